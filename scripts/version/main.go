// Release helper: bumps pkg/version.go, commits, tags and optionally pushes.
package main

import (
	"bufio"
	"fmt"
	"os"
	"os/exec"
	"regexp"
	"strings"
)

const (
	versionFile = "pkg/version.go"
	colorReset  = "\033[0m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorRed    = "\033[31m"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run scripts/version/main.go <version>")
		fmt.Println()
		fmt.Println("Examples:")
		fmt.Println("  go run scripts/version/main.go 1.0.0")
		fmt.Println("  go run scripts/version/main.go v1.0.0-beta")
		os.Exit(1)
	}

	version := os.Args[1]
	if !strings.HasPrefix(version, "v") {
		version = "v" + version
	}
	if ok, _ := regexp.MatchString(`^v\d+\.\d+\.\d+(-[a-zA-Z0-9.]+)?$`, version); !ok {
		fail("Invalid version format. Use format: v1.0.0 or 1.0.0")
	}

	fmt.Printf("This will update %s to %s, commit and tag %s\n", versionFile, version, version)
	if !confirm("Continue?") {
		os.Exit(0)
	}

	if hasUncommittedChanges() {
		fail("You have uncommitted changes. Please commit or stash them first.")
	}

	content := fmt.Sprintf("package constants\n\nvar Version = %q\n", version)
	if err := os.WriteFile(versionFile, []byte(content), 0644); err != nil {
		fail(fmt.Sprintf("Failed to update version file: %v", err))
	}

	steps := [][]string{
		{"git", "add", versionFile},
		{"git", "commit", "-m", "chore: bump version to " + version},
		{"git", "tag", "-a", version, "-m", "Release " + version},
	}
	for _, step := range steps {
		if err := run(step[0], step[1:]...); err != nil {
			fail(fmt.Sprintf("%s failed: %v", strings.Join(step, " "), err))
		}
	}
	fmt.Printf("%s✓ Tagged %s%s\n", colorGreen, version, colorReset)

	if !confirm("Push to remote?") {
		fmt.Println("Skipped push. Don't forget:")
		fmt.Printf("  git push origin HEAD && git push origin %s\n", version)
		os.Exit(0)
	}
	if err := run("git", "push", "origin", "HEAD"); err != nil {
		fail(fmt.Sprintf("Failed to push commit: %v", err))
	}
	if err := run("git", "push", "origin", version); err != nil {
		fail(fmt.Sprintf("Failed to push tag: %v", err))
	}

	fmt.Printf("%sReleased %s%s\n", colorGreen, version, colorReset)
	fmt.Printf("Users can now use: go get github.com/shellkit/pathglob@%s\n", version)
}

func hasUncommittedChanges() bool {
	output, err := exec.Command("git", "status", "--porcelain").Output()
	if err != nil {
		return false
	}
	return len(strings.TrimSpace(string(output))) > 0
}

func run(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

func confirm(question string) bool {
	fmt.Printf("%s%s (y/N): %s", colorYellow, question, colorReset)
	response, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes"
}

func fail(msg string) {
	fmt.Printf("%s%s%s\n", colorRed, msg, colorReset)
	os.Exit(1)
}
