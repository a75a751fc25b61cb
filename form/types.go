// form/types.go

package form

// NodeType tells element nodes apart from the text and comment nodes that
// sit between them in a parsed descriptor.
type NodeType uint8

const (
	NodeElement NodeType = 0x01
	NodeText    NodeType = 0x02
	NodeComment NodeType = 0x03
)

// Kind is the closed set of element kinds the compiler knows how to build.
// Everything else maps to KindUnknown and is skipped.
type Kind uint8

const (
	KindUnknown  Kind = 0x00
	KindGroup    Kind = 0x01
	KindText     Kind = 0x02
	KindInput    Kind = 0x03
	KindCheckBox Kind = 0x04
	KindPages    Kind = 0x05
	KindPage     Kind = 0x06
	KindTable    Kind = 0x07
	KindColumns  Kind = 0x08
)

var kindNames = map[string]Kind{
	"Group":    KindGroup,
	"Text":     KindText,
	"Input":    KindInput,
	"CheckBox": KindCheckBox,
	"Pages":    KindPages,
	"Page":     KindPage,
	"Table":    KindTable,
	"Columns":  KindColumns,
}

func (k Kind) String() string {
	for name, kind := range kindNames {
		if kind == k {
			return name
		}
	}
	return "Unknown"
}

// IsField reports whether elements of this kind take part in table collapse.
func (k Kind) IsField() bool {
	return k == KindText || k == KindInput
}

// Structural element names.
const (
	ElemElements       = "Elements"
	ElemProperties     = "Properties"
	ElemContainedItems = "ContainedItems"
)

// Property paths, relative to an element node.
const (
	PathTitle                 = "Properties/Title/item/content"
	PathName                  = "Properties/Name"
	PathType                  = "Properties/Type"
	PathGroup                 = "Properties/Group"
	PathShowTitle             = "Properties/ShowTitle"
	PathRepresentation        = "Properties/Representation"
	PathTitleLocation         = "Properties/TitleLocation"
	PathHeaderHorizontalAlign = "Properties/HeaderHorizontalAlign"
	PathHorizontalAlign       = "Properties/HorizontalAlign"
	PathPagesRepresentation   = "Properties/PagesRepresentation"
	PathGrouping              = "Properties/Grouping"
	PathChildrenGrouping      = "Properties/ChildrenGrouping"
	PathContainedItems        = ElemContainedItems
)

// Enumeration tokens found in property values.
const (
	ValueTrue             = "true"
	ValueFalse            = "false"
	ValueUsualGroup       = "UsualGroup"
	ValueVertical         = "Vertical"
	ValueHorizontal       = "Horizontal"
	ValueStrongSeparation = "StrongSeparation"
	ValueLabelField       = "LabelField"
	ValueNone             = "None"
	ValueLeft             = "Left"
	ValueRight            = "Right"
	ValueAuto             = "Auto"
	ValueTabsOnTop        = "TabsOnTop"
)

// Node is one node of a parsed descriptor. Element nodes carry a Name and
// Children; text and comment nodes carry Content.
type Node struct {
	Type     NodeType
	Name     string
	Content  string
	Attrs    map[string]string
	Children []*Node
}

// Document is a loaded descriptor file.
type Document struct {
	Path string
	Root *Node
}

// IsElement reports whether n is an element named name.
func (n *Node) IsElement(name string) bool {
	return n != nil && n.Type == NodeElement && n.Name == name
}

// Kind returns the dispatch kind of an element node.
func (n *Node) Kind() Kind {
	if n == nil || n.Type != NodeElement {
		return KindUnknown
	}
	return kindNames[n.Name]
}

// Elements returns the element children of n, skipping text and comments.
func (n *Node) Elements() []*Node {
	if n == nil {
		return nil
	}
	out := make([]*Node, 0, len(n.Children))
	for _, c := range n.Children {
		if c.Type == NodeElement {
			out = append(out, c)
		}
	}
	return out
}
