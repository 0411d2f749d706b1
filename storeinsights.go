// Package storeinsights extracts structured business and catalog insights
// from public Shopify storefronts. Given a base URL it detects whether the
// target runs Shopify, retrieves the paginated product catalog, resolves
// which products are promoted on the homepage, and mines unstructured pages
// for contact details, social presence, policies, FAQs, brand narrative and
// important navigation links.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, sqlite/) or their
// role (pipeline/).
package storeinsights
