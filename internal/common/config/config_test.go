package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// genField generates either an empty string or a short token
func genField() gopter.Gen {
	return gen.OneGenOf(gen.Const(""), gen.RegexMatch(`^[a-zA-Z0-9]{1,30}$`))
}

// Property: a config validates iff package, token and user are all set
func TestValidateRequiresAllCredentials(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("Validate fails with ErrInvalidArgs when any required field is empty", prop.ForAll(
		func(pkg, jail, token, user, lockDir string) bool {
			cfg := &Config{
				Package:  pkg,
				Jail:     jail,
				Pushover: PushoverConfig{Token: token, User: user},
				LockDir:  lockDir,
			}
			err := cfg.Validate()
			complete := pkg != "" && token != "" && user != ""
			if complete {
				return err == nil
			}
			return errors.Is(err, ErrInvalidArgs)
		},
		genField(), genField(), genField(), genField(), genField(),
	))

	properties.TestingRun(t)
}

func TestValidateReportsFirstMissingField(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want error
	}{
		{"missing package", Config{Pushover: PushoverConfig{Token: "t", User: "u"}}, ErrMissingPackage},
		{"missing token", Config{Package: "foo", Pushover: PushoverConfig{User: "u"}}, ErrMissingToken},
		{"missing user", Config{Package: "foo", Pushover: PushoverConfig{Token: "t"}}, ErrMissingUser},
		{"jail and lock dir are optional", Config{Package: "foo", Pushover: PushoverConfig{Token: "t", User: "u"}}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.want == nil {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
			if !errors.Is(err, ErrInvalidArgs) {
				t.Errorf("expected error to wrap ErrInvalidArgs, got %v", err)
			}
		})
	}
}

func TestMarkerPath(t *testing.T) {
	tests := []struct {
		lockDir string
		pkg     string
		want    string
	}{
		{"", "foo", "foo_has_update"},
		{"./", "foo", "./foo_has_update"},
		{"/var/db/puc/", "nginx", "/var/db/puc/nginx_has_update"},
		// no separator is inserted
		{"/tmp/locks", "nginx", "/tmp/locksnginx_has_update"},
	}

	for _, tt := range tests {
		cfg := &Config{Package: tt.pkg, LockDir: tt.lockDir}
		if got := cfg.MarkerPath(); got != tt.want {
			t.Errorf("MarkerPath(%q, %q) = %q, want %q", tt.lockDir, tt.pkg, got, tt.want)
		}
	}
}

func TestStringMasksCredentials(t *testing.T) {
	cfg := &Config{
		Package:  "nginx",
		Pushover: PushoverConfig{Token: "azGDORePK8gMaC0QOYAMyEEuzJnyUi", User: "uQiRzpo4DXghDmr9QzzfQu27cmVRsG"},
	}

	s := cfg.String()
	if strings.Contains(s, cfg.Pushover.Token) || strings.Contains(s, cfg.Pushover.User) {
		t.Errorf("String() leaked a credential: %s", s)
	}
	if !strings.Contains(s, "pkg=nginx") || !strings.Contains(s, "jail=-") {
		t.Errorf("String() missing fields: %s", s)
	}
}

func TestLoadFromTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "checker.toml")
	content := `pkg = "nginx"
jail = "www"
po_lock_dir = "/var/db/puc/"

[pushover]
token = "tok"
user = "usr"
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}

	want := Config{Package: "nginx", Jail: "www", LockDir: "/var/db/puc/", Pushover: PushoverConfig{Token: "tok", User: "usr"}}
	if *cfg != want {
		t.Errorf("expected %+v, got %+v", want, *cfg)
	}
}

func TestLoadFromYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "checker.yml")
	content := `pkg: nginx
pushover:
  token: tok
  user: usr
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if cfg.Package != "nginx" || cfg.Pushover.Token != "tok" || cfg.Pushover.User != "usr" {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if cfg.Jail != "" || cfg.LockDir != "" {
		t.Errorf("optional fields should be empty, got %+v", cfg)
	}
}

func TestLoadFromErrors(t *testing.T) {
	dir := t.TempDir()

	badTOML := filepath.Join(dir, "bad.toml")
	os.WriteFile(badTOML, []byte("pkg = \n"), 0600)

	badYAML := filepath.Join(dir, "bad.yaml")
	os.WriteFile(badYAML, []byte("pkg: [unterminated\n"), 0600)

	ini := filepath.Join(dir, "checker.ini")
	os.WriteFile(ini, []byte("pkg=foo\n"), 0600)

	tests := []struct {
		name    string
		path    string
		wantErr error
	}{
		{"missing file", filepath.Join(dir, "nope.toml"), os.ErrNotExist},
		{"bad toml", badTOML, nil},
		{"bad yaml", badYAML, nil},
		{"unsupported extension", ini, ErrUnsupportedFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFrom(tt.path)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}
