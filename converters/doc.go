// Package converters provides two-way adapters between metis.Graph and
// gonum/graph, so converted graphs can be inspected with gonum's algorithms
// before they are handed to a partitioner.
//
//	ToGonum(g)      metis.Graph → *simple.UndirectedGraph (node IDs = METIS ids)
//	FromGonum(u)    graph.Undirected → metis.Graph (ids relabeled densely)
//	Components(g)   connected components via gonum/graph/topo
package converters
