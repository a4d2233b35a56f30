package cli_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calvinalkan/lifespace/internal/activity"
	"github.com/calvinalkan/lifespace/internal/cli"
	"github.com/calvinalkan/lifespace/internal/fs"
	"github.com/calvinalkan/lifespace/internal/store"
)

// session wires a read loop over script against a store in a temp dir.
func session(t *testing.T, fsys fs.FS, path, script string) (*cli.Session, *bytes.Buffer, *bytes.Buffer, *store.Store) {
	t.Helper()

	st, _, err := store.Open(fsys, path)
	require.NoError(t, err)

	var out, errOut bytes.Buffer

	o := cli.NewIO(&out, &errOut)
	input := cli.NewLineReader(strings.NewReader(script), &out)
	interp := cli.NewInterpreter(o, input, cli.Options{
		Now:      func() time.Time { return thursday },
		Location: time.UTC,
	})

	return cli.NewSession(o, input, interp, st), &out, &errOut, st
}

func Test_Session_Runs_Until_Quit_When_Commands_Fail(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "activities.json")
	script := "l value\n\nbogus\nedit taxes importance 500\nd laundry\nq\nd taxes\n"

	s, out, errOut, st := session(t, fs.NewReal(), path, script)
	require.NoError(t, st.Save(household(t)))

	err := s.Run(household(t))
	require.NoError(t, err)

	cli.AssertContains(t, out.String(), "Low-hanging-fruit listing:")
	cli.AssertContains(t, out.String(), "Deleted 1 activity.")
	cli.AssertContains(t, errOut.String(), "error: unknown command: bogus")
	cli.AssertContains(t, errOut.String(), "error: importance: value out of range")

	got, err := st.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"taxes", "guitar"}, names(got), "commands after quit must not run")
}

func Test_Session_Stops_When_Input_Ends(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "activities.json")

	s, _, _, st := session(t, fs.NewReal(), path, "edit gui name Guitar practice")

	err := s.Run(household(t))
	require.NoError(t, err)

	got, err := st.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"laundry", "taxes", "Guitar practice"}, names(got))
}

func Test_Session_Fails_When_Save_Fails(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "activities.json")
	chaos := fs.NewChaos(fs.NewReal(), 1, fs.ChaosConfig{})

	s, _, _, st := session(t, chaos, path, "d laundry\nq\n")
	require.NoError(t, st.Save(household(t)))

	chaos.SetPathState(path, fs.PathReadOnly)

	err := s.Run(household(t))
	require.ErrorIs(t, err, store.ErrWrite)
	require.True(t, fs.IsInjected(err))

	chaos.SetPathState(path, fs.PathNormal)

	got, err := st.Load()
	require.NoError(t, err)
	assert.Len(t, got, 3, "failed save keeps the previous file")
}

func Test_Session_Deletes_Activity_When_Name_Typed_With_Extra_Spaces(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "activities.json")
	script := strings.Join([]string{
		"add",
		"Call  mom",
		"40",
		"1",
		"0",
		"2024-02-01->2024-01-01", // due before start
		"2024-01-01->2024-01-11",
		"10->60",
		"view Call  mom",
		"delete Call  mom",
		"q",
	}, "\n") + "\n"

	s, out, errOut, st := session(t, fs.NewReal(), path, script)

	err := s.Run(household(t))
	require.NoError(t, err)

	cli.AssertContains(t, out.String(), "Added Call mom.")
	cli.AssertContains(t, out.String(), "Deleted 1 activity.")
	cli.AssertContains(t, errOut.String(), "invalid: due date is before start date")
	cli.AssertNotContains(t, errOut.String(), "error:")

	got, err := st.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"laundry", "taxes", "guitar"}, names(got))
}

func TestComplete(t *testing.T) {
	t.Parallel()

	tests := []struct {
		line string
		want []string
	}{
		{line: "", want: cli.Verbs},
		{line: "v", want: []string{"view"}},
		{line: "l", want: []string{"list"}},
		{line: "list ", want: []string{"list priority", "list value", "list margin", "list fun"}},
		{line: "l m", want: []string{"l margin"}},
		{line: "view ", want: nil},
		{line: "list fun ", want: nil},
		{line: "zz", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, cli.Complete(tt.line))
		})
	}
}

func Test_LineReader_Returns_Last_Line_When_No_Newline(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	r := cli.NewLineReader(strings.NewReader("first\r\nlast"), &out)

	for _, want := range []string{"first", "last"} {
		got, err := r.Prompt("> ")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := r.Prompt("> ")
	require.Error(t, err)
	assert.Equal(t, "> > > ", out.String())
}

func Test_Renderer_Writes_Plain_Text_When_Color_Disabled(t *testing.T) {
	t.Parallel()

	laundry := household(t)[0]
	score := activity.Scorer{}.Score(laundry, thursday)

	var plain bytes.Buffer

	got := cli.NewRenderer(&plain, false).Activity(laundry, score)
	assert.NotContains(t, got, "\033[")
	assert.Contains(t, got, "  Margin: 3\n")
}
