// Command rasterdemo demonstrates the rasteredit layered image engine.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/gogpu/rasteredit"
)

func main() {
	var (
		width  = flag.Int("width", 512, "canvas width")
		height = flag.Int("height", 512, "canvas height")
		output = flag.String("output", "demo.png", "output file")
	)
	flag.Parse()

	s := rasteredit.NewSession(*width, *height)

	bgColor := rasteredit.Color{R: 235, G: 235, B: 240, A: 255}
	bgIdx, err := s.Perform(&rasteredit.LayerCreateEmpty{Color: &bgColor})
	if err != nil {
		log.Fatalf("create background layer: %v", err)
	}

	strokeIdx, err := s.Perform(&rasteredit.LayerCreateEmpty{})
	if err != nil {
		log.Fatalf("create stroke layer: %v", err)
	}

	line := &rasteredit.DrawLine{
		Id:       *strokeIdx,
		Radius:   24,
		Color:    rasteredit.Color{R: 30, G: 120, B: 220, A: 255},
		Mode:     rasteredit.BlendAlpha,
		Hardness: 0.7,
		Distance: 4,
	}
	if err := s.StartStep(line); err != nil {
		log.Fatalf("start stroke: %v", err)
	}
	track := [][2]int{{60, 80}, {160, 40}, {260, 120}, {340, 260}, {420, 340}}
	for _, pt := range track {
		if err := s.ExtendStep(pt[0], pt[1]); err != nil {
			log.Fatalf("extend stroke: %v", err)
		}
	}
	if err := s.FinishStep(); err != nil {
		log.Fatalf("finish stroke: %v", err)
	}

	if _, err := s.Perform(&rasteredit.EffectNoiseGaussian{Id: *bgIdx, Mean: 0, Stddev: 6, Seed: 1}); err != nil {
		log.Fatalf("apply grain: %v", err)
	}

	png, err := s.Content().EncodePNG()
	if err != nil {
		log.Fatalf("encode PNG: %v", err)
	}
	if err := os.WriteFile(*output, png, 0o644); err != nil {
		log.Fatalf("write output: %v", err)
	}

	log.Printf("Demo saved to %s (%dx%d)\n", *output, *width, *height)
}
