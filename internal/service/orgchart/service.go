package orgchart

import (
	"context"

	"github.com/zenhr/zenhr-backend-go/internal/domain/employee"
	"github.com/zenhr/zenhr-backend-go/internal/domain/orgchart"
)

type Service struct {
	employees employee.Repository
}

func NewService(employees employee.Repository) *Service {
	return &Service{employees: employees}
}

// Chart builds the reporting tree for the whole directory.
func (s *Service) Chart(ctx context.Context) (*orgchart.Node, error) {
	emps, err := s.employees.List(ctx)
	if err != nil {
		return nil, err
	}
	return Build(emps)
}

// Build turns the flat employee list into a single-rooted tree.
//
// A managerId that does not resolve to an existing employee is treated as
// "no manager", so a dangling reference never breaks the layout. When more
// than one root remains, everything is attached under one synthetic
// organization node. Cycles are not prevented at write time; they surface
// here as nodes unreachable from any root and turn into ErrCyclicHierarchy,
// which the handler renders as a diagnostic instead of a chart.
func Build(emps []employee.Employee) (*orgchart.Node, error) {
	if len(emps) == 0 {
		return &orgchart.Node{
			ID:        orgchart.SyntheticRootID,
			Name:      "Organization",
			Role:      "All Departments",
			Synthetic: true,
		}, nil
	}

	valid := make(map[string]bool, len(emps))
	for _, e := range emps {
		valid[e.ID] = true
	}

	nodes := make(map[string]*orgchart.Node, len(emps))
	for _, e := range emps {
		nodes[e.ID] = &orgchart.Node{
			ID:         e.ID,
			Name:       e.Name,
			Role:       e.JobTitle,
			Department: e.Department,
		}
	}

	var roots []*orgchart.Node
	for _, e := range emps {
		if e.ManagerID != nil && valid[*e.ManagerID] && *e.ManagerID != e.ID {
			parent := nodes[*e.ManagerID]
			parent.Children = append(parent.Children, nodes[e.ID])
		} else {
			roots = append(roots, nodes[e.ID])
		}
	}

	var root *orgchart.Node
	if len(roots) == 1 {
		root = roots[0]
	} else {
		root = &orgchart.Node{
			ID:        orgchart.SyntheticRootID,
			Name:      "Organization",
			Role:      "All Departments",
			Synthetic: true,
			Children:  roots,
		}
	}

	// A cycle leaves its members parented to each other and reachable from
	// no root, so a reachability count exposes it.
	if countNodes(root) != len(emps)+syntheticCount(root) {
		return nil, orgchart.ErrCyclicHierarchy
	}
	return root, nil
}

func countNodes(n *orgchart.Node) int {
	total := 1
	for _, c := range n.Children {
		total += countNodes(c)
	}
	return total
}

func syntheticCount(root *orgchart.Node) int {
	if root.Synthetic {
		return 1
	}
	return 0
}
