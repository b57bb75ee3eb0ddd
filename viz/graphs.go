// ABOUTME: DOT graph generation for contact and lead analytics
// ABOUTME: Renders group distribution and the lead funnel via graphviz
package viz

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"
	"github.com/goccy/go-graphviz/cgraph"

	"calldeck/models"
)

// GenerateGroupGraph renders the account's contact groups as a star graph
// around a total node, edge labels carrying member counts.
func GenerateGroupGraph(ctx context.Context, stats *models.ContactStats, groups []models.ContactGroup) (string, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to create graphviz instance: %w", err)
	}
	defer gv.Close()

	graph, err := gv.Graph()
	if err != nil {
		return "", fmt.Errorf("failed to create graph: %w", err)
	}
	defer graph.Close()

	graph.SetLayout("neato")

	root, err := graph.CreateNodeByName(fmt.Sprintf("All Contacts (%d)", stats.Total))
	if err != nil {
		return "", fmt.Errorf("failed to create root node: %w", err)
	}
	root.SetShape(cgraph.BoxShape)

	for _, group := range groups {
		count := group.ContactCount
		if byGroup, ok := stats.ByGroup[group.Name]; ok {
			count = byGroup
		}
		node, err := graph.CreateNodeByName(group.Name)
		if err != nil {
			return "", fmt.Errorf("failed to create group node: %w", err)
		}
		edge, err := graph.CreateEdgeByName("", root, node)
		if err != nil {
			return "", fmt.Errorf("failed to create edge: %w", err)
		}
		edge.SetLabel(fmt.Sprintf("%d", count))
	}

	var buf bytes.Buffer
	if err := gv.Render(ctx, graph, graphviz.XDOT, &buf); err != nil {
		return "", fmt.Errorf("failed to render graph: %w", err)
	}
	return buf.String(), nil
}

// funnelStages orders the lead statuses from first touch to outcome.
var funnelStages = []string{
	models.LeadNotPickedUp,
	models.LeadFollowUp,
	models.LeadInterested,
	models.LeadNotInterested,
}

// GenerateFunnelGraph renders the lead pipeline as a left-to-right chain
// with per-stage counts.
func GenerateFunnelGraph(ctx context.Context, leads []models.Lead) (string, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to create graphviz instance: %w", err)
	}
	defer gv.Close()

	graph, err := gv.Graph()
	if err != nil {
		return "", fmt.Errorf("failed to create graph: %w", err)
	}
	defer graph.Close()

	graph.SetRankDir(cgraph.LRRank)

	counts := make(map[string]int)
	for _, lead := range leads {
		counts[lead.Status]++
	}

	var prev *cgraph.Node
	for _, stage := range funnelStages {
		label := fmt.Sprintf("%s\n%d", stage, counts[stage])
		node, err := graph.CreateNodeByName(label)
		if err != nil {
			return "", fmt.Errorf("failed to create stage node: %w", err)
		}
		node.SetShape(cgraph.BoxShape)
		if prev != nil {
			if _, err := graph.CreateEdgeByName("", prev, node); err != nil {
				return "", fmt.Errorf("failed to create edge: %w", err)
			}
		}
		prev = node
	}

	var buf bytes.Buffer
	if err := gv.Render(ctx, graph, graphviz.XDOT, &buf); err != nil {
		return "", fmt.Errorf("failed to render graph: %w", err)
	}
	return buf.String(), nil
}
