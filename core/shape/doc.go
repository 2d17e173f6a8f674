// Package shape declares the content contract of each section family as
// data. A [Descriptor] lists the required fields, paired field families,
// legacy aggregate fields, per-field kinds, and item-count bounds of one
// family; a [Registry] maps section ids to descriptors through an ordered
// list of matchers, falling back to a generic descriptor.
//
// Evaluation order is part of the contract: matchers may overlap, and the
// first entry whose matcher accepts an id wins. [Registry.Entries] exposes
// that order.
package shape
