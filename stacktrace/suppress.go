// Package stacktrace renders chained errors as shortened, human-readable
// stack-trace reports. Frames that originate from well-known noise packages
// (container internals, reflection proxies, test frameworks) are elided and
// replaced with a one-line summary, so the report keeps only the parts that
// point at application code.
//
// The set of suppressed package prefixes is loaded once per process from an
// optional "stacktrace.packages" resource (one prefix per line, properties
// style). When the resource is absent or unreadable, a built-in default list
// is used instead.
package stacktrace

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
)

const packagesResource = "stacktrace.packages"

// DefaultPackages returns the built-in list of suppressed package prefixes,
// used when no packages resource is present.
func DefaultPackages() []string {
	return []string{
		"org.h2", "org.apache.catalina", "org.apache.coyote", "org.apache.tomcat",
		"com.arjuna", "org.apache.cxf", "org.hibernate", "org.junit", "org.jboss",
		"java.lang.reflect.Method", "sun.", "com.sun", "org.eclipse",
		"junit.framework", "com.sun.faces", "javax.faces", "org.richfaces",
		"org.apache.el", "javax.servlet",
	}
}

// suppressedPackages loads the suppression list exactly once per process.
// Concurrent first callers block until the single load completes.
var suppressedPackages = sync.OnceValue(loadSuppressedPackages)

func loadSuppressedPackages() []string {
	file, err := openPackagesResource()
	if err != nil {
		log.Info().Str("resource", packagesResource).Msg("No packages resource present, using defaults")
		return DefaultPackages()
	}
	defer file.Close()
	packages, err := parsePackages(file)
	if err != nil {
		log.Info().Str("resource", packagesResource).Err(err).Msg("Could not parse packages resource, using defaults")
		return DefaultPackages()
	}
	return packages
}

// openPackagesResource looks for the resource next to the executable first,
// then in the working directory.
func openPackagesResource() (*os.File, error) {
	if executable, err := os.Executable(); err == nil {
		if file, err := os.Open(filepath.Join(filepath.Dir(executable), packagesResource)); err == nil {
			return file, nil
		}
	}
	return os.Open(packagesResource)
}

// parsePackages reads one prefix per line. Lines are properties-style: blank
// lines and lines starting with '#' or '!' are ignored, and only the key left
// of '=' or ':' is used.
func parsePackages(reader io.Reader) ([]string, error) {
	var packages []string
	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == '#' || line[0] == '!' {
			continue
		}
		if index := strings.IndexAny(line, "=:"); index >= 0 {
			line = strings.TrimSpace(line[:index])
		}
		if line != "" {
			packages = append(packages, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return packages, nil
}

// matchSuppressed reports whether the qualified origin of a frame starts with
// one of the suppressed prefixes, and returns the matching prefix. When more
// than one prefix matches, any one of them may be returned.
func matchSuppressed(origin string) (string, bool) {
	for _, prefix := range suppressedPackages() {
		if strings.HasPrefix(origin, prefix) {
			return prefix, true
		}
	}
	return "", false
}
