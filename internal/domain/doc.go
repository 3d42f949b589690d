// Package domain models conflict and crisis event reports aggregated from
// public data sources.
//
// # Data Sources
//
// Events are ingested from six independent feeds: the GDELT GEO API
// (geopolitical news index, queried by topic keyword groups over a 24 hour
// window), the ReliefWeb reports API (humanitarian situation reports), a set
// of world-news RSS feeds, the NASA EONET natural-hazard feed, the USGS
// earthquake catalog, and the Wikipedia current-events portal. Each source
// speaks its own schema; the connectors in internal/source normalize
// everything into [Event].
//
// # Canonical Event Conventions
//
// Titles are truncated to 100 characters and descriptions to 300. Every event
// that leaves the pipeline carries a coordinate pair; reports whose location
// cannot be resolved are dropped at the connector. The Verified flag is a
// coarse trust tier: true for authoritative agency feeds (USGS, EONET,
// ReliefWeb) and for curated sources, false for algorithmically classified
// news items.
//
// # Classification
//
// Category and severity are derived from ordered keyword rule tables
// evaluated first-match-wins over a lowercased haystack of thematic tags and
// title text. The tables are data, not control flow, so they can be extended
// and tested independently. The defaults ("combat", "low") are deliberate
// simplifications, not the output of a real classifier.
//
// # ID Generation
//
// Event IDs combine the ingestion timestamp with a random suffix. They are
// unique within a batch but not stable across batches; cross-batch identity
// is the deduplication engine's job, not the ID's.
package domain
