// Copyright © 2025 The WGS-HGT Development Team.
// All rights reserved.
// Distributed under BSD3 license that can be found in the LICENSE file.

package taxonomy

// A Dataset is a documented species genome set,
// a lineage with the number of genomes
// that passed the quality filter.
type Dataset struct {
	Lineage Lineage
	Genomes int
}

// Reference datasets used for the sub-tree analysis.
var reference = []Dataset{
	{
		Lineage: "k__Bacteria|p__Proteobacteria|c__Gammaproteobacteria|o__Pseudomonadales|f__Moraxellaceae|g__Acinetobacter|s__Acinetobacter_baumannii",
		Genomes: 1118,
	},
	{
		Lineage: "k__Bacteria|p__Proteobacteria|c__Betaproteobacteria|o__Burkholderiales|f__Burkholderiaceae|g__Burkholderia|s__Burkholderia_stagnalis",
		Genomes: 63,
	},
	{
		Lineage: "k__Bacteria|p__Proteobacteria|c__Gammaproteobacteria|o__Pseudomonadales|f__Pseudomonadaceae|g__Pseudomonas|s__Pseudomonas_fluorescens",
		Genomes: 57,
	},
	{
		Lineage: "k__Bacteria|p__Firmicutes|c__Bacilli|o__Lactobacillales|f__Streptococcaceae|g__Streptococcus|s__Streptococcus_pneumoniae",
		Genomes: 6659,
	},
}

// Reference returns the documented species datasets,
// sorted by species name.
func Reference() []Dataset {
	ds := make([]Dataset, len(reference))
	copy(ds, reference)
	return ds
}
