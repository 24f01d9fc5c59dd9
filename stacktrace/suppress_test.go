package stacktrace

import (
	"strings"
	"testing"
)

func TestDefaultPackages(t *testing.T) {
	expected := []string{
		"org.h2", "org.apache.catalina", "org.apache.coyote", "org.apache.tomcat",
		"com.arjuna", "org.apache.cxf", "org.hibernate", "org.junit", "org.jboss",
		"java.lang.reflect.Method", "sun.", "com.sun", "org.eclipse",
		"junit.framework", "com.sun.faces", "javax.faces", "org.richfaces",
		"org.apache.el", "javax.servlet",
	}
	defaults := DefaultPackages()
	if len(defaults) != len(expected) {
		t.Fatalf("expected %d default packages, got %d", len(expected), len(defaults))
	}
	for index, prefix := range expected {
		if defaults[index] != prefix {
			t.Fatalf("expected %q at index %d, got %q", prefix, index, defaults[index])
		}
	}
}

func TestLoadedSetEqualsDefaultsWithoutResource(t *testing.T) {
	// no stacktrace.packages resource exists when the tests run
	loaded := suppressedPackages()
	defaults := DefaultPackages()
	if len(loaded) != len(defaults) {
		t.Fatalf("expected %d packages, got %d", len(defaults), len(loaded))
	}
	for index, prefix := range defaults {
		if loaded[index] != prefix {
			t.Fatalf("expected %q at index %d, got %q", prefix, index, loaded[index])
		}
	}
}

func TestParsePackages(t *testing.T) {
	packages, err := parsePackages(strings.NewReader(
		"# Packages to filter\n" +
			"org.h2\n" +
			"\n" +
			"  org.apache.catalina  \n" +
			"! another comment\n" +
			"com.example=ignored value\n" +
			"com.acme : ignored value\n",
	))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := []string{"org.h2", "org.apache.catalina", "com.example", "com.acme"}
	if len(packages) != len(expected) {
		t.Fatalf("expected %v, got %v", expected, packages)
	}
	for index, prefix := range expected {
		if packages[index] != prefix {
			t.Fatalf("expected %v, got %v", expected, packages)
		}
	}
}

func TestMatchSuppressed(t *testing.T) {
	tests := []struct {
		origin string
		prefix string
		ok     bool
	}{
		{"org.h2.Driver.connect", "org.h2", true},
		{"sun.misc.Unsafe.allocateMemory", "sun.", true},
		{"java.lang.reflect.Method.invoke", "java.lang.reflect.Method", true},
		{"com.example.app.Service.run", "", false},
		{"", "", false},
	}
	for _, test := range tests {
		prefix, ok := matchSuppressed(test.origin)
		if ok != test.ok || prefix != test.prefix {
			t.Fatalf("matchSuppressed(%q) = %q, %v; expected %q, %v",
				test.origin, prefix, ok, test.prefix, test.ok)
		}
	}
}

func TestMatchSuppressedTie(t *testing.T) {
	// "com.sun.faces.X" is covered by both "com.sun" and "com.sun.faces";
	// either prefix is an acceptable answer.
	prefix, ok := matchSuppressed("com.sun.faces.lifecycle.Phase.doPhase")
	if !ok {
		t.Fatalf("expected a match")
	}
	if prefix != "com.sun" && prefix != "com.sun.faces" {
		t.Fatalf("expected one of the matching prefixes, got %q", prefix)
	}
}
