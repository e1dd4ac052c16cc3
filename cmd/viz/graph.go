package main

import (
	"io"
	"os"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/tempnet-io/tempnet/container"
	"github.com/tempnet-io/tempnet/temporal"
)

const (
	minSymbolSize = 8
	maxSymbolSize = 48
)

func nodeLabel(index *temporal.NodeIndex, node uint64) string {
	if label, exists := index.Label(node); exists {
		return label
	}

	return strconv.FormatUint(node, 10)
}

// symbolSize maps a node's betweenness onto the symbol size range, with the most central node drawn largest.
func symbolSize(betweenness, maxBetweenness uint64) float64 {
	if maxBetweenness == 0 {
		return minSymbolSize
	}

	return minSymbolSize + (maxSymbolSize-minSymbolSize)*float64(betweenness)/float64(maxBetweenness)
}

func contactChart(graph *container.ContactGraph, index *temporal.NodeIndex, betweenness map[uint64]uint64, title string) *charts.Graph {
	chart := charts.NewGraph()
	chart.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
	)

	var (
		nodes          []opts.GraphNode
		links          []opts.GraphLink
		maxBetweenness uint64
	)

	for _, value := range betweenness {
		if value > maxBetweenness {
			maxBetweenness = value
		}
	}

	graph.EachNode(func(node uint64) bool {
		nodes = append(nodes, opts.GraphNode{
			Name:       nodeLabel(index, node),
			SymbolSize: symbolSize(betweenness[node], maxBetweenness),
		})

		return true
	})

	graph.EachEdge(func(a, b uint64, weight float64) bool {
		links = append(links, opts.GraphLink{
			Source: nodeLabel(index, a),
			Target: nodeLabel(index, b),
			Value:  float32(weight),
		})

		return true
	})

	chart.AddSeries("contacts", nodes, links).
		SetSeriesOptions(
			charts.WithGraphChartOpts(opts.GraphChart{
				Force: &opts.GraphForce{Repulsion: 8000},
			}),
			charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "right"}),
		)

	return chart
}

func renderContactGraph(path string, graph *container.ContactGraph, index *temporal.NodeIndex, betweenness map[uint64]uint64, title string) error {
	page := components.NewPage()
	page.AddCharts(
		contactChart(graph, index, betweenness, title),
	)

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	defer f.Close()

	return page.Render(io.MultiWriter(f))
}
