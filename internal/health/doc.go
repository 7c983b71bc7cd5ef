// Package health audits a markdown knowledge base in two tiers.
//
// # Tier 1: structural validation
//
// Tier 1 checks each topical area and each document against the layout
// conventions (an overview per area, required frontmatter fields, depth
// naming, required sections for working documents) and grades every
// result as fail, warn or pass.
//
// # Tier 2: review triggers
//
// Tier 2 does not judge quality. Each Trigger collects facts about one
// document and decides deterministically whether a reviewer (human or
// model) should look at it:
//
//  1. Collect facts (word counts, dates, citation tallies)
//  2. Express the principle being protected (Philosophy)
//  3. Attach the context a reviewer needs (Finding.Context)
//  4. Leave the verdict to the reviewer
//
// A finding is a request for review, not a defect. The reviewer may well
// decide a 40-word "Why This Matters" section is fine.
//
// # Trigger Lifecycle
//
//	// 1. Build the registry
//	registry, err := health.NewDefaultRegistry(markdown.NewFileParser(), config.DefaultHealthConfig())
//
//	// 2. Pick the triggers for a document's depth
//	for _, t := range registry.Applicable("working") {
//	    findings, err := t.Check(path)
//	    // ...
//	}
//
// The Auditor does this for every document under the knowledge directory
// and flattens the findings into a Tier2Report whose summary is derived
// from the queue by Summarize.
//
// Triggers share no state. Each Check reads and parses its document again,
// so any trigger can be tested alone against a synthetic file or a fake
// markdown.Parser.
package health
