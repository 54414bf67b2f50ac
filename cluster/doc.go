// Package cluster finds proximity relationships between matches of distinct terms.
//
// Two matches form a candidate pair when their terms differ and their start
// indices are strictly closer than the proximity threshold. Which skips
// produced the matches is not considered.
//
// Pairs are found with a sort-and-sweep join per pair of term labels, which
// costs O((|A|+|B|) log + pairs) instead of the full cross product. Group
// merges pairs that share a match into transitive clusters for presentation.
package cluster
