// Command glslbind-validate-config checks a glslbind config file and lists
// the shader pairs its roots would produce, without creating a GL context.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/fosdem/glslbind/lib/config"
	"github.com/fosdem/glslbind/lib/discovery"
	"github.com/fosdem/glslbind/lib/generator"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatalf("Usage: %s <config file>", os.Args[0])
	}
	cfg, err := config.Parse(os.Args[1])
	if err != nil {
		fmt.Printf("Config invalid: %s\n", err)
		os.Exit(1)
	}

	fmt.Print("Config valid!\n\n")
	fmt.Print(cfg)

	incomplete := 0
	for _, root := range cfg.RootPaths() {
		pairs, err := discovery.Discover(root)
		if err != nil {
			fmt.Printf("\nRoot %s unusable: %s\n", root, err)
			os.Exit(1)
		}
		fmt.Printf("\n%s: %d shader pairs\n", root, len(pairs))
		for i := range pairs {
			p := &pairs[i]
			if !p.Complete() {
				incomplete++
				fmt.Printf("  %s: incomplete\n", p)
				continue
			}
			fmt.Printf("  %s -> %s\n", p.Name(), generator.OutputPath(p))
		}
	}

	if incomplete > 0 {
		fmt.Printf("\n%d incomplete shader pairs\n", incomplete)
		os.Exit(1)
	}
}
