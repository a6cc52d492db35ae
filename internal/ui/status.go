package ui

import "fmt"

// StatusPanel is a right-side panel describing the villager. It owns its nodes and
// refreshes their text when AppendNodes is called with visible true.
type StatusPanel struct {
	panel    *Node
	title    *Node
	state    *Node
	position *Node
	heading  *Node
	speed    *Node
	bounds   *Node
}

// NewStatusPanel creates a StatusPanel styled by .status, .status-title and .status-line.
func NewStatusPanel() *StatusPanel {
	return &StatusPanel{
		panel:    NewNode("panel", "status", "", ""),
		title:    NewNode("label", "status-title", "", "Villager"),
		state:    NewNode("label", "status-line", "status-state", ""),
		position: NewNode("label", "status-line", "status-position", ""),
		heading:  NewNode("label", "status-line", "status-heading", ""),
		speed:    NewNode("label", "status-line", "status-speed", ""),
		bounds:   NewNode("label", "status-line", "status-bounds", ""),
	}
}

// Status is what the panel shows. The scene fills it; ui does not depend on scene.
type Status struct {
	State    string
	Facing   string
	Position [3]float64
	Yaw      float64
	Speed    float64
	Min, Max [3]float64
}

// AppendNodes appends the panel's nodes to dst when visible, after updating labels from st.
func (p *StatusPanel) AppendNodes(dst []*Node, visible bool, st Status) []*Node {
	if !visible {
		return dst
	}
	p.Refresh(st)
	return append(dst, p.panel, p.title, p.state, p.position, p.heading, p.speed, p.bounds)
}

// Refresh rewrites the labels from st.
func (p *StatusPanel) Refresh(st Status) {
	p.state.Text = fmt.Sprintf("State: %s (%s)", st.State, st.Facing)
	p.position.Text = fmt.Sprintf("Position: %.2f, %.2f, %.2f", st.Position[0], st.Position[1], st.Position[2])
	p.heading.Text = fmt.Sprintf("Yaw: %.3f", st.Yaw)
	p.speed.Text = fmt.Sprintf("Speed: %g", st.Speed)
	p.bounds.Text = fmt.Sprintf("Bounds: z %.1f..%.1f", st.Min[2], st.Max[2])
}
