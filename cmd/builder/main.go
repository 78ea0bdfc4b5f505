// Package main implements the build helper for the Unpod desktop shell.
// Usage: go run cmd/builder/main.go [check|build|bundle]
package main

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"unpod-desktop/internal/platform"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "check":
		runCheck()
	case "build":
		runBuild()
	case "bundle":
		runBundle()
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Print(`
Unpod Build Helper
==================

Usage: go run cmd/builder/main.go <command>

Commands:
  check     Verify all required tools are installed
  build     Build the shell for the current platform
  bundle    Stage the backend server and Node runtime into the built app
  help      Show this help message

The bundle step places resources exactly where the shell resolves them at
runtime; run it after build, before packaging.

`)
}

// runCheck verifies all required tools are installed
func runCheck() {
	fmt.Println("Checking required tools...")

	tools := []struct {
		name string
		args []string
	}{
		{"go", []string{"version"}},
		{"wails", []string{"version"}},
		{"node", []string{"--version"}},
		{"npm", []string{"--version"}},
	}

	allFound := true
	for _, tool := range tools {
		output, err := exec.Command(tool.name, tool.args...).Output()
		if err != nil {
			fmt.Printf("MISSING: %s is not in PATH\n", tool.name)
			allFound = false
			continue
		}
		version := strings.TrimSpace(string(output))
		if len(version) > 50 {
			version = version[:50] + "..."
		}
		fmt.Printf("ok %s: %s\n", tool.name, version)
	}

	if !allFound {
		fmt.Println("\nSome required tools are missing. Please install them and try again.")
		os.Exit(1)
	}
}

// runBuild builds the shell for the current platform
func runBuild() {
	runCheck()

	fmt.Printf("\nBuilding for %s/%s...\n", runtime.GOOS, runtime.GOARCH)

	args := []string{"build", "-platform", fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)}
	if runtime.GOOS == "windows" {
		args = append(args, "-nsis")
	}

	cmd := exec.Command("wails", args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		fmt.Printf("Build failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("\nBuild completed.")
}

// runBundle stages the backend server directory, the application icon and
// the Node runtime into the per-platform layout the shell resolves at
// runtime (internal/platform is the single source of truth for that layout).
func runBundle() {
	exePath := builtExecutable()
	if _, err := os.Stat(exePath); err != nil {
		fmt.Printf("Built app not found at %s - run build first\n", exePath)
		os.Exit(1)
	}

	serverSrc := os.Getenv("UNPOD_SERVER_DIR")
	if serverSrc == "" {
		serverSrc = filepath.Join("backend", "server")
	}

	plat := platform.Current()
	resources := platform.ResourcesDir(plat, exePath)

	fmt.Printf("Staging server from %s...\n", serverSrc)
	if err := copyDir(serverSrc, filepath.Join(resources, "server")); err != nil {
		fmt.Printf("Failed to stage server: %v\n", err)
		os.Exit(1)
	}

	if err := copyFile(filepath.Join("build", "appicon.png"), filepath.Join(resources, "icons", "icon.png"), 0644); err != nil {
		fmt.Printf("Failed to stage icon: %v\n", err)
		os.Exit(1)
	}

	nodeSrc, err := exec.LookPath(nodeBinaryName())
	if err != nil {
		fmt.Printf("Node runtime not found in PATH: %v\n", err)
		os.Exit(1)
	}
	nodeDst := platform.RuntimeBinary(plat, exePath)
	fmt.Printf("Staging Node runtime %s -> %s\n", nodeSrc, nodeDst)
	if err := copyFile(nodeSrc, nodeDst, 0755); err != nil {
		fmt.Printf("Failed to stage Node runtime: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Bundle completed.")
}

func builtExecutable() string {
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join("build", "bin", "Unpod.app", "Contents", "MacOS", "Unpod")
	case "windows":
		return filepath.Join("build", "bin", "Unpod.exe")
	default:
		return filepath.Join("build", "bin", "Unpod")
	}
}

func nodeBinaryName() string {
	if runtime.GOOS == "windows" {
		return "node.exe"
	}
	return "node"
}

func copyFile(src, dst string, mode os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return err
	}
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, in)
	return err
}

func copyDir(src, dst string) error {
	return filepath.Walk(src, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if info.IsDir() {
			return os.MkdirAll(target, 0755)
		}
		return copyFile(path, target, info.Mode())
	})
}
