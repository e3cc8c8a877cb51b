package main

import (
	"fmt"
	"os"

	"github.com/voxelsplace/menger/go/sponge"
	"github.com/voxelsplace/menger/go/utils"
)

func usage() {
	fmt.Println("Usage: spongetool [level] [output.glb]")
	fmt.Println("Builds the 20-cube Menger sponge at the given recursion level")
	fmt.Println("(default 3) and renders it to a .glb file (default sponge.glb).")
	fmt.Println("An output path ending in .zst is written zstd-compressed.")
}

func main() {
	level := sponge.DefaultLevel
	outPath := "sponge.glb"

	args := os.Args[1:]
	if len(args) > 2 {
		usage()
		os.Exit(1)
	}
	if len(args) >= 1 {
		if _, err := fmt.Sscan(args[0], &level); err != nil {
			usage()
			os.Exit(1)
		}
	}
	if len(args) == 2 {
		outPath = args[1]
	}

	grid, err := sponge.Build(level)
	if err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}

	opts := utils.RenderOptions{
		FaceColor: "#ff0000",
		EdgeColor: "#000000",
		Title:     fmt.Sprintf("3D Menger Sponge (level=%d, 20-cube variant)", level),
	}
	if err := utils.RunRenderGLB(grid, opts, outPath); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}

	fmt.Printf("%s: side %d, %d solid voxels, xxh64 %016x\n", outPath, grid.Side, grid.Count(), grid.Checksum())
	fmt.Println("Operation completed!")
}
