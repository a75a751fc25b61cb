package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/waozixyz/formview/compiler"
	"github.com/waozixyz/formview/form"
	"github.com/waozixyz/formview/render"
	"github.com/waozixyz/formview/widget"
)

const validForm = `<?xml version="1.0" encoding="UTF-8"?>
<Form>
	<Elements>
		<Properties><ChildrenGrouping>Vertical</ChildrenGrouping></Properties>
		<ContainedItems>
			<CheckBox><Properties><Name>Agree</Name></Properties></CheckBox>
		</ContainedItems>
	</Elements>
</Form>`

const brokenForm = `<Form><Elements><ContainedItems><CheckBox/></ContainedItems></Elements></Form>`

// fakeRenderer closes after a fixed number of frames.
type fakeRenderer struct {
	mu        sync.Mutex
	frames    int
	maxFrames int
	initErr   error

	inited  bool
	cleaned bool
	roots   []widget.Widget
	config  render.WindowConfig
}

func (f *fakeRenderer) Init(c render.WindowConfig) error {
	f.inited = true
	f.config = c
	return f.initErr
}

func (f *fakeRenderer) SetRoot(root widget.Widget) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.roots = append(f.roots, root)
}

func (f *fakeRenderer) RenderFrame() { f.frames++ }
func (f *fakeRenderer) PollEvents()  {}
func (f *fakeRenderer) BeginFrame()  {}
func (f *fakeRenderer) EndFrame()    {}
func (f *fakeRenderer) Cleanup()     { f.cleaned = true }

func (f *fakeRenderer) ShouldClose() bool {
	return f.maxFrames > 0 && f.frames >= f.maxFrames
}

func (f *fakeRenderer) rootCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.roots)
}

func writeForm(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "Form.xml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRun_RendersUntilClosed(t *testing.T) {
	r := &fakeRenderer{maxFrames: 3}
	win := render.DefaultWindowConfig()

	err := Run(context.Background(), r, Options{FormPath: writeForm(t, validForm), Window: win})
	require.NoError(t, err)

	assert.True(t, r.inited)
	assert.Equal(t, win, r.config)
	assert.Equal(t, 3, r.frames)
	assert.True(t, r.cleaned)
	require.Len(t, r.roots, 1)
	root, ok := r.roots[0].(*widget.Box)
	require.True(t, ok)
	assert.Len(t, root.Items, 1)
}

func TestRun_LoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr error
	}{
		{name: "missing file", path: filepath.Join(t.TempDir(), "none.xml"), wantErr: form.ErrSourceUnavailable},
		{name: "malformed structure", path: writeForm(t, brokenForm), wantErr: compiler.ErrStructure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &fakeRenderer{maxFrames: 1}
			err := Run(context.Background(), r, Options{FormPath: tt.path})
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			assert.False(t, r.inited, "no window opens for a form that does not compile")
		})
	}
}

func TestRun_InitFailure(t *testing.T) {
	r := &fakeRenderer{initErr: errors.New("no display")}

	err := Run(context.Background(), r, Options{FormPath: writeForm(t, validForm)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no display")
	assert.True(t, r.cleaned)
	assert.Zero(t, r.frames)
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r := &fakeRenderer{}

	err := Run(ctx, r, Options{FormPath: writeForm(t, validForm)})
	require.NoError(t, err)
	assert.Zero(t, r.frames)
	assert.True(t, r.cleaned)
}

func TestReload(t *testing.T) {
	r := &fakeRenderer{}
	comp := compiler.New()

	reload(r, writeForm(t, brokenForm), comp, zap.NewNop())
	assert.Zero(t, r.rootCount(), "a failed reload keeps the current tree")

	reload(r, writeForm(t, validForm), comp, zap.NewNop())
	assert.Equal(t, 1, r.rootCount())
}

func TestWatch_ReportsChanges(t *testing.T) {
	path := writeForm(t, validForm)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w, err := Watch(ctx, path, nil)
	require.NoError(t, err)
	defer func() { _ = w.Close() }()

	other := filepath.Join(filepath.Dir(path), "other.xml")
	require.NoError(t, os.WriteFile(other, []byte("x"), 0o600))
	select {
	case <-w.Changes():
		t.Fatal("changes to other files must not be reported")
	case <-time.After(3 * DebounceDelay):
	}

	// Several writes in a burst settle into one change.
	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(path, []byte(validForm), 0o600))
	}
	select {
	case <-w.Changes():
	case <-time.After(2 * time.Second):
		t.Fatal("no change reported")
	}
	select {
	case <-w.Changes():
		t.Fatal("a burst must be reported once")
	case <-time.After(3 * DebounceDelay):
	}
}

func TestWatch_MissingDirectory(t *testing.T) {
	_, err := Watch(context.Background(), filepath.Join(t.TempDir(), "gone", "Form.xml"), nil)
	assert.Error(t, err)
}
