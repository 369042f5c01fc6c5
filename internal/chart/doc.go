// Package chart renders the pipeline's PNG charts with gonum/plot.
//
// Two charts are produced per run: a bar chart of the top ranked
// growth areas and a line chart of the top blocks' median price
// history. Both renderers skip silently when handed no data; a run
// over a sparse dataset legitimately ranks nothing, and a missing
// chart says that more honestly than an empty frame would.
package chart
