// Package flow builds the cash flow graph of a view: income flows from
// subcategories through their categories into a central budget node, and
// expenses flow out of it through categories into subcategories.
package flow

import (
	"fmt"
	"net/url"

	"github.com/budget-zero/backend/pkg/models"
	"github.com/shopspring/decimal"
)

// Side tells which part of the graph a node belongs to.
type Side string

const (
	SideIncome  Side = "income"
	SideBudget  Side = "budget"
	SideExpense Side = "expense"
)

// Node colors used by the chart.
const (
	ColorIncome  = "#4CAF50"
	ColorBudget  = "#2196F3"
	ColorExpense = "#F44336"
)

// BudgetID is the ID of the central node.
const BudgetID = "budget"

// BudgetLabel is the display label of the central node.
const BudgetLabel = "Budget Total"

type Node struct {
	ID     string          `json:"id" example:"expense:Logement/Loyer"`
	Name   string          `json:"name" example:"Loyer"`
	Label  string          `json:"label" example:"Loyer : 300.00 €"`
	Amount decimal.Decimal `json:"amount" example:"300"`
	Side   Side            `json:"side" example:"expense"`
	Color  string          `json:"color" example:"#F44336"`
}

type Edge struct {
	From   string          `json:"from" example:"budget"`
	To     string          `json:"to" example:"expense:Logement"`
	Weight decimal.Decimal `json:"weight" example:"300"`
}

// Graph is the flow graph of a view. Every edge connects two of its nodes.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`

	TotalIncome  decimal.Decimal `json:"totalIncome" example:"1000"`
	TotalExpense decimal.Decimal `json:"totalExpense" example:"300"`
	Balance      decimal.Decimal `json:"balance" example:"700"`
	SavingsRate  decimal.Decimal `json:"savingsRate" example:"70"` // Balance in percent of the income, 0 without income
}

// NodeID returns the ID of the node for a category, or for a subcategory if
// subcategory is not empty. Category and subcategory names are path escaped
// and can therefore never produce the ID of another node.
func NodeID(side Side, category, subcategory string) string {
	id := fmt.Sprintf("%s:%s", side, url.PathEscape(category))
	if subcategory != "" {
		id += "/" + url.PathEscape(subcategory)
	}
	return id
}

// Node returns the node with the ID.
func (g Graph) Node(id string) (Node, bool) {
	for _, n := range g.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return Node{}, false
}

type builder struct {
	graph Graph
	nodes map[string]int
	edges map[[2]string]int
}

// Build returns the flow graph of the view. Transactions without
// subcategory are grouped under the default subcategory.
//
// Nodes and edges appear in the order their first transaction appears in
// the view, so the same view always yields the same graph.
func Build(view []models.Transaction) Graph {
	b := builder{
		graph: Graph{
			Nodes:        []Node{},
			Edges:        []Edge{},
			TotalIncome:  decimal.Zero,
			TotalExpense: decimal.Zero,
		},
		nodes: make(map[string]int),
		edges: make(map[[2]string]int),
	}

	b.node(BudgetID, BudgetLabel, SideBudget, ColorBudget)

	for _, t := range view {
		subcategory := t.Subcategory
		if subcategory == "" {
			subcategory = models.DefaultSubcategory
		}

		switch t.Type {
		case models.Income:
			cat := b.node(NodeID(SideIncome, t.Category, ""), t.Category, SideIncome, ColorIncome)
			sub := b.node(NodeID(SideIncome, t.Category, subcategory), subcategory, SideIncome, ColorIncome)
			b.flow(sub, cat, t.Amount)
			b.flow(cat, BudgetID, t.Amount)
			b.credit(t.Amount, cat, sub)
			b.graph.TotalIncome = b.graph.TotalIncome.Add(t.Amount)

		case models.Expense:
			cat := b.node(NodeID(SideExpense, t.Category, ""), t.Category, SideExpense, ColorExpense)
			sub := b.node(NodeID(SideExpense, t.Category, subcategory), subcategory, SideExpense, ColorExpense)
			b.flow(BudgetID, cat, t.Amount)
			b.flow(cat, sub, t.Amount)
			b.credit(t.Amount, cat, sub)
			b.graph.TotalExpense = b.graph.TotalExpense.Add(t.Amount)
		}
	}

	g := b.graph
	g.Balance = g.TotalIncome.Sub(g.TotalExpense)
	g.SavingsRate = decimal.Zero
	if g.TotalIncome.IsPositive() {
		g.SavingsRate = g.Balance.Div(g.TotalIncome).Mul(decimal.NewFromInt(100)).Round(1)
	}

	for i := range g.Nodes {
		n := &g.Nodes[i]
		if n.ID == BudgetID {
			n.Amount = decimal.Max(g.TotalIncome, g.TotalExpense)
			continue
		}
		n.Label = fmt.Sprintf("%s : %s €", n.Name, n.Amount.StringFixed(2))
	}

	return g
}

// node returns the ID of the node, creating the node if needed.
func (b *builder) node(id, name string, side Side, color string) string {
	if _, ok := b.nodes[id]; !ok {
		b.nodes[id] = len(b.graph.Nodes)
		b.graph.Nodes = append(b.graph.Nodes, Node{
			ID:     id,
			Name:   name,
			Label:  name,
			Amount: decimal.Zero,
			Side:   side,
			Color:  color,
		})
	}
	return id
}

// flow adds the amount to the edge.
func (b *builder) flow(from, to string, amount decimal.Decimal) {
	key := [2]string{from, to}
	i, ok := b.edges[key]
	if !ok {
		i = len(b.graph.Edges)
		b.edges[key] = i
		b.graph.Edges = append(b.graph.Edges, Edge{From: from, To: to, Weight: decimal.Zero})
	}
	b.graph.Edges[i].Weight = b.graph.Edges[i].Weight.Add(amount)
}

// credit adds the amount to the nodes.
func (b *builder) credit(amount decimal.Decimal, ids ...string) {
	for _, id := range ids {
		n := &b.graph.Nodes[b.nodes[id]]
		n.Amount = n.Amount.Add(amount)
	}
}
