package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pathFixture = `<Input>
	<Properties>
		<Name>Customer</Name>
		<!-- the comment must not hide the sibling -->
		<Title>
			<v8:item xmlns:v8="urn:v8">
				<v8:lang>en</v8:lang>
				<v8:content>Customer name</v8:content>
			</v8:item>
		</Title>
		<ShowTitle>false</ShowTitle>
		<Type></Type>
		<Nested><Inner>x</Inner></Nested>
		<Name>Second</Name>
	</Properties>
</Input>`

func TestResolve(t *testing.T) {
	root := mustRead(t, pathFixture).Root

	tests := []struct {
		name     string
		path     string
		wantNil  bool
		wantName string
	}{
		{name: "empty path is the node itself", path: "", wantName: "Input"},
		{name: "single segment", path: "Properties", wantName: "Properties"},
		{name: "nested", path: "Properties/Title/item/content", wantName: "content"},
		{name: "missing first segment", path: "ContainedItems", wantNil: true},
		{name: "missing middle segment", path: "Properties/Missing/content", wantNil: true},
		{name: "segment below a leaf", path: "Properties/Name/Deeper", wantNil: true},
		{name: "text is never matched", path: "Properties/ShowTitle/false", wantNil: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(root, tt.path)
			if tt.wantNil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.wantName, got.Name)
		})
	}
}

func TestResolve_FirstMatchWins(t *testing.T) {
	root := mustRead(t, pathFixture).Root

	v, ok := TextValue(root, "Properties/Name")
	require.True(t, ok)
	assert.Equal(t, "Customer", v)
}

func TestResolve_Deterministic(t *testing.T) {
	root := mustRead(t, pathFixture).Root

	first := Resolve(root, "Properties/Title/item/content")
	second := Resolve(root, "Properties/Title/item/content")
	assert.Same(t, first, second)
}

func TestResolve_NilAndChildless(t *testing.T) {
	assert.Nil(t, Resolve(nil, "Properties"))
	assert.Nil(t, Resolve(&Node{Type: NodeElement, Name: "Empty"}, "Properties"))
}

func TestTextValue(t *testing.T) {
	root := mustRead(t, pathFixture).Root

	tests := []struct {
		name   string
		path   string
		want   string
		wantOK bool
	}{
		{name: "plain value", path: "Properties/ShowTitle", want: "false", wantOK: true},
		{name: "namespaced title", path: "Properties/Title/item/content", want: "Customer name", wantOK: true},
		{name: "empty element has no text", path: "Properties/Type", wantOK: false},
		{name: "first child is an element", path: "Properties/Nested", wantOK: false},
		{name: "first child is whitespace", path: "Properties/Title", want: "\n\t\t\t", wantOK: true},
		{name: "missing path", path: "Properties/Nope", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := TextValue(root, tt.path)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTextValue_SkipsLeadingComment(t *testing.T) {
	root := mustRead(t, `<Input><Properties><Name><!-- c -->Customer</Name></Properties></Input>`).Root

	v, ok := TextValue(root, "Properties/Name")
	require.True(t, ok)
	assert.Equal(t, "Customer", v)

	title, ok := Title(root)
	require.True(t, ok)
	assert.Equal(t, "[Customer]", title)
}

func TestTextValue_ReadsDoNotMutate(t *testing.T) {
	root := mustRead(t, pathFixture).Root
	before := len(Resolve(root, "Properties").Children)

	a, okA := TextValue(root, "Properties/Title/item/content")
	b, okB := TextValue(root, "Properties/Title/item/content")

	assert.Equal(t, a, b)
	assert.Equal(t, okA, okB)
	assert.Len(t, Resolve(root, "Properties").Children, before)
}

func TestBoolAndEnumValue(t *testing.T) {
	root := mustRead(t, pathFixture).Root

	assert.False(t, BoolValue(root, "Properties/ShowTitle", true))
	assert.True(t, BoolValue(root, "Properties/Missing", true))
	assert.False(t, BoolValue(root, "Properties/Missing", false))
	assert.True(t, BoolValue(root, "Properties/Name", true), "non-boolean text falls back to the default")

	assert.True(t, EnumValue(root, "Properties/Name", "Customer"))
	assert.False(t, EnumValue(root, "Properties/Name", "customer"))
	assert.False(t, EnumValue(root, "Properties/Type", ""))
}

func TestTitle(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		want   string
		wantOK bool
	}{
		{
			name:   "title wins over name",
			src:    `<Text><Properties><Name>N</Name><Title><item><content>Shown</content></item></Title></Properties></Text>`,
			want:   "Shown",
			wantOK: true,
		},
		{
			name:   "name in brackets",
			src:    `<Text><Properties><Name>OnlyName</Name></Properties></Text>`,
			want:   "[OnlyName]",
			wantOK: true,
		},
		{
			name:   "neither",
			src:    `<Text><Properties/></Text>`,
			wantOK: false,
		},
		{
			name:   "empty title content falls back to name",
			src:    `<Text><Properties><Name>N</Name><Title><item><content/></item></Title></Properties></Text>`,
			want:   "[N]",
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Title(mustRead(t, tt.src).Root)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNodeKind(t *testing.T) {
	tests := []struct {
		name string
		node *Node
		want Kind
	}{
		{name: "group", node: &Node{Type: NodeElement, Name: "Group"}, want: KindGroup},
		{name: "input", node: &Node{Type: NodeElement, Name: "Input"}, want: KindInput},
		{name: "columns", node: &Node{Type: NodeElement, Name: "Columns"}, want: KindColumns},
		{name: "unknown element", node: &Node{Type: NodeElement, Name: "Button"}, want: KindUnknown},
		{name: "text node named like a kind", node: &Node{Type: NodeText, Name: "Text"}, want: KindUnknown},
		{name: "nil", node: nil, want: KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.node.Kind())
		})
	}

	assert.True(t, KindText.IsField())
	assert.True(t, KindInput.IsField())
	assert.False(t, KindGroup.IsField())
	assert.Equal(t, "CheckBox", KindCheckBox.String())
	assert.Equal(t, "Unknown", KindUnknown.String())
}
