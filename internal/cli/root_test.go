package cli

import (
	"bytes"
	"testing"
)

// executeCommand runs a command with the given args and captures output.
func executeCommand(args ...string) (string, error) {
	root := NewRootCmd()
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestRootHelp(t *testing.T) {
	_, err := executeCommand("--help")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGlobalFlags(t *testing.T) {
	root := NewRootCmd()

	formatFlag := root.PersistentFlags().Lookup("format")
	if formatFlag == nil {
		t.Fatal("expected --format flag to exist")
	}
	if formatFlag.DefValue != "text" {
		t.Errorf("expected --format default 'text', got %q", formatFlag.DefValue)
	}

	if root.PersistentFlags().Lookup("data-dir") == nil {
		t.Fatal("expected --data-dir flag to exist")
	}
	if root.PersistentFlags().Lookup("storage") == nil {
		t.Fatal("expected --storage flag to exist")
	}
}

func TestRootSubcommands(t *testing.T) {
	root := NewRootCmd()

	want := []string{"add", "list", "show", "remove", "import", "export", "stats", "near", "theme", "serve", "version"}
	for _, name := range want {
		found := false
		for _, cmd := range root.Commands() {
			if cmd.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("expected subcommand %q to be registered", name)
		}
	}
}

func TestOpenBackendUnknown(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("SI_STORAGE", "")
	flagStorage = "bogus"
	defer func() { flagStorage = "" }()

	if _, err := openBackend(Config{}); err == nil {
		t.Error("expected error for unknown backend")
	}
}
