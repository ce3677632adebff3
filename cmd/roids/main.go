package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/JenkinsJB/roids/internal/utils"
	"github.com/JenkinsJB/roids/pkg/annotation"
	"github.com/JenkinsJB/roids/pkg/media"
	"github.com/JenkinsJB/roids/pkg/serialization"
)

func main() {
	var in, out, mediaOut string
	var quality, maxDim int
	var lossless bool

	flag.StringVar(&in, "in", "", "input annotation file (json/yaml)")
	flag.StringVar(&out, "out", "", "convert annotations to this file (format by extension)")
	flag.StringVar(&mediaOut, "media", "", "re-encode the referenced media to this file (jpg/png/webp)")
	flag.IntVar(&quality, "quality", 90, "JPEG/WebP output quality (1-100)")
	flag.BoolVar(&lossless, "lossless", false, "WebP lossless mode")
	flag.IntVar(&maxDim, "maxdim", 0, "max long side for re-encoded media (px), 0=original")

	flag.Parse()
	if in == "" {
		log.Fatalf("usage: %s -in annotations.json [-out annotations.yaml] [-media out.webp -quality 90]", filepath.Base(os.Args[0]))
	}

	project, err := serialization.Import(in)
	if err != nil {
		log.Fatalf("failed to import %s: %v", in, err)
	}

	printSummary(in, project)

	if out != "" {
		if dir := filepath.Dir(out); dir != "." {
			if err := utils.EnsureDir(dir); err != nil {
				log.Fatalf("failed to create output directory: %v", err)
			}
		}
		if err := serialization.Export(project, out); err != nil {
			log.Fatalf("failed to export %s: %v", out, err)
		}
		fmt.Printf("wrote %s\n", out)
	}

	if mediaOut != "" {
		if !utils.IsImageFile(mediaOut) {
			log.Fatalf("unsupported media output %q (want jpg/png/webp)", mediaOut)
		}
		if !utils.FileExists(project.MediaFile) {
			log.Fatalf("referenced media %q does not exist", project.MediaFile)
		}
		frame, err := media.Load(project.MediaFile)
		if err != nil {
			log.Fatalf("failed to load media: %v", err)
		}
		opts := media.SaveOptions{Quality: quality, Lossless: lossless, MaxDim: maxDim}
		if err := media.Save(frame.Image(), mediaOut, opts); err != nil {
			log.Fatalf("failed to re-encode media: %v", err)
		}
		fmt.Printf("wrote %s\n", mediaOut)
	}
}

func printSummary(path string, project *annotation.Project) {
	fmt.Printf("%s", path)
	if info, err := os.Stat(path); err == nil {
		fmt.Printf(" (%s)", utils.FormatFileSize(info.Size()))
	}
	fmt.Println()
	fmt.Printf("  media: %s (%dx%d)", project.MediaFile, project.FrameWidth, project.FrameHeight)
	if !utils.FileExists(project.MediaFile) {
		fmt.Printf("  [missing]")
	}
	fmt.Println()
	fmt.Printf("  annotations: %d\n", len(project.Annotations))
	for i := range project.Annotations {
		a := &project.Annotations[i]
		fmt.Printf("    %-10s %q  %d vertices\n", a.Kind, a.Name, a.VertexCount())
	}
}
