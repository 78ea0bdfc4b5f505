package notify

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"unpod-desktop/internal/config"
)

type fakeProber struct {
	query   Permission
	request Permission
}

func (f fakeProber) Query() Permission   { return f.query }
func (f fakeProber) Request() Permission { return f.request }

type displayCall struct {
	title, body, icon string
}

// chdir switches the working directory for the duration of the test,
// mirroring testing.T.Chdir (which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}

func newTestGateway(p Prober, display displayFunc) *Gateway {
	return &Gateway{
		mode:    config.Development,
		prober:  p,
		display: display,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func recordingDisplay(calls *[]displayCall, err error) displayFunc {
	return func(title, body, icon string) error {
		*calls = append(*calls, displayCall{title, body, icon})
		return err
	}
}

func TestShow_PermissionDenied(t *testing.T) {
	var calls []displayCall
	g := newTestGateway(fakeProber{request: Denied}, recordingDisplay(&calls, nil))

	err := g.Show("Title", "Body")
	if !errors.Is(err, ErrPermissionDenied) {
		t.Fatalf("Show() error = %v, want ErrPermissionDenied", err)
	}
	if len(calls) != 0 {
		t.Errorf("display called %d times despite denial", len(calls))
	}
}

func TestShow_ReRequestsAfterDenial(t *testing.T) {
	var calls []displayCall
	g := newTestGateway(fakeProber{request: Denied}, recordingDisplay(&calls, nil))

	if err := g.Show("a", "b"); !errors.Is(err, ErrPermissionDenied) {
		t.Fatalf("first Show() error = %v, want ErrPermissionDenied", err)
	}

	// The OS flips the grant; the next Show must go through, a prior
	// denial is never remembered.
	g.prober = fakeProber{request: Granted}
	chdir(t, t.TempDir())
	if err := g.Show("a", "b"); err != nil {
		t.Fatalf("second Show() error = %v", err)
	}
	if len(calls) != 1 {
		t.Errorf("display calls = %d, want 1", len(calls))
	}
}

func TestShow_MissingIconDisplaysWithout(t *testing.T) {
	chdir(t, t.TempDir()) // no build/appicon.png here
	var calls []displayCall
	g := newTestGateway(fakeProber{request: Granted}, recordingDisplay(&calls, nil))

	if err := g.Show("Title", "Body"); err != nil {
		t.Fatalf("Show() error = %v", err)
	}
	if len(calls) != 1 {
		t.Fatalf("display calls = %d, want 1", len(calls))
	}
	if calls[0].icon != "" {
		t.Errorf("icon = %q, want empty", calls[0].icon)
	}
	if calls[0].title != "Title" || calls[0].body != "Body" {
		t.Errorf("display call = %+v", calls[0])
	}
}

func TestShow_UsesIconWhenPresent(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	if err := os.MkdirAll("build", 0o755); err != nil {
		t.Fatal(err)
	}
	iconPath := filepath.Join("build", "appicon.png")
	if err := os.WriteFile(iconPath, []byte("png"), 0o644); err != nil {
		t.Fatal(err)
	}

	var calls []displayCall
	g := newTestGateway(fakeProber{request: Granted}, recordingDisplay(&calls, nil))

	if err := g.Show("Title", "Body"); err != nil {
		t.Fatalf("Show() error = %v", err)
	}
	if len(calls) != 1 || calls[0].icon != iconPath {
		t.Errorf("display calls = %+v, want one call with icon %q", calls, iconPath)
	}
}

func TestShow_RetriesWithoutIconOnFailure(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	if err := os.MkdirAll("build", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("build", "appicon.png"), []byte("png"), 0o644); err != nil {
		t.Fatal(err)
	}

	var calls []displayCall
	display := func(title, body, icon string) error {
		calls = append(calls, displayCall{title, body, icon})
		if icon != "" {
			return errors.New("icon rejected")
		}
		return nil
	}
	g := newTestGateway(fakeProber{request: Granted}, display)

	if err := g.Show("Title", "Body"); err != nil {
		t.Fatalf("Show() error = %v", err)
	}
	if len(calls) != 2 {
		t.Fatalf("display calls = %d, want 2", len(calls))
	}
	if calls[0].icon == "" || calls[1].icon != "" {
		t.Errorf("calls = %+v, want icon attempt then icon-less retry", calls)
	}
}

func TestShow_BothAttemptsFail(t *testing.T) {
	chdir(t, t.TempDir())
	var calls []displayCall
	g := newTestGateway(fakeProber{request: Granted}, recordingDisplay(&calls, errors.New("no notification daemon")))

	err := g.Show("Title", "Body")
	if !errors.Is(err, ErrDisplayFailed) {
		t.Fatalf("Show() error = %v, want ErrDisplayFailed", err)
	}
}

func TestPermissionString(t *testing.T) {
	cases := map[Permission]string{
		Unknown: "unknown",
		Granted: "granted",
		Denied:  "denied",
	}
	for p, want := range cases {
		if got := p.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", p, got, want)
		}
	}
}

func TestRequest(t *testing.T) {
	g := newTestGateway(fakeProber{request: Granted}, nil)
	if !g.Request() {
		t.Error("Request() = false, want true for granted")
	}
	g.prober = fakeProber{request: Denied}
	if g.Request() {
		t.Error("Request() = true, want false for denied")
	}
}
