// pagemark is a command-line tool for converting OCR output to Markdown.
//
// It accepts either a page image (recognized via the Youdao OCR API or a
// local Tesseract install) or a previously cached OCR JSON response, and
// writes Markdown that preserves the document structure.
//
// Usage:
//
//	pagemark -image page.png -config youdao.yaml [options]
//	pagemark -json page.ocr.json [options]
//
// Input options (one required):
//
//	-image string   Path to a page image (PNG, JPEG, TIFF, BMP, WebP)
//	-json string    Path to a cached OCR JSON response
//
// Processing options:
//
//	-engine string  OCR engine for -image: "youdao" or "tesseract" (default "youdao")
//	-config string  YAML config with Youdao credentials (required for youdao)
//	-mode string    Conversion mode: "advanced" or "basic" (default "advanced")
//	-o string       Output Markdown path (default: stdout)
//	-save-json      Cache the raw OCR response beside the output (default true)
//
// Example config file:
//
//	app_key: YOUR_APP_KEY
//	app_secret: YOUR_APP_SECRET
//	lang_type: auto
//	column: columns
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/tsawler/pagemark"
	"github.com/tsawler/pagemark/ocr"
	"github.com/tsawler/pagemark/youdao"
)

type fileConfig struct {
	AppKey    string `yaml:"app_key"`
	AppSecret string `yaml:"app_secret"`
	LangType  string `yaml:"lang_type"`
	Column    string `yaml:"column"`
	Endpoint  string `yaml:"endpoint"`
}

func main() {
	imagePath := flag.String("image", "", "Path to a page image to recognize")
	jsonPath := flag.String("json", "", "Path to a cached OCR JSON response")
	engine := flag.String("engine", "youdao", `OCR engine for -image: "youdao" or "tesseract"`)
	configPath := flag.String("config", "", "YAML config with Youdao credentials")
	mode := flag.String("mode", "advanced", `Conversion mode: "advanced" or "basic"`)
	outPath := flag.String("o", "", "Output Markdown path (default: stdout)")
	saveJSON := flag.Bool("save-json", true, "Cache the raw OCR response beside the output")
	flag.Parse()

	if (*imagePath == "") == (*jsonPath == "") {
		fmt.Fprintln(os.Stderr, "Error: provide exactly one of -image or -json")
		flag.Usage()
		os.Exit(1)
	}

	var raw []byte
	var err error
	switch {
	case *jsonPath != "":
		raw, err = os.ReadFile(*jsonPath)
		if err != nil {
			fatal("reading OCR JSON: %v", err)
		}
	case *engine == "youdao":
		raw, err = recognizeYoudao(*imagePath, *configPath)
		if err != nil {
			fatal("%v", err)
		}
		if *saveJSON {
			cachePath := jsonCachePath(*imagePath, *outPath)
			if err := os.WriteFile(cachePath, raw, 0o644); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: could not cache OCR response: %v\n", err)
			}
		}
	case *engine == "tesseract":
		markdown, err := recognizeTesseract(*imagePath, *mode)
		if err != nil {
			fatal("%v", err)
		}
		writeOutput(*outPath, markdown)
		return
	default:
		fatal("unknown engine %q", *engine)
	}

	conv := pagemark.FromJSON(raw)
	if *mode == "basic" {
		conv = conv.Basic()
	} else if *mode != "advanced" {
		fatal("unknown mode %q", *mode)
	}

	markdown, err := conv.Markdown()
	if err != nil {
		fatal("converting to markdown: %v", err)
	}
	writeOutput(*outPath, markdown)
}

func recognizeYoudao(imagePath, configPath string) ([]byte, error) {
	if configPath == "" {
		return nil, fmt.Errorf("the youdao engine requires -config with credentials")
	}
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	image, err := os.ReadFile(imagePath)
	if err != nil {
		return nil, fmt.Errorf("reading image: %w", err)
	}
	if _, err := ocr.ValidateImage(image); err != nil {
		return nil, err
	}

	client := youdao.NewClientWithConfig(youdao.Config{
		AppKey:    fc.AppKey,
		AppSecret: fc.AppSecret,
		LangType:  fc.LangType,
		Column:    fc.Column,
		Endpoint:  fc.Endpoint,
	})

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	return client.RecognizeRaw(ctx, image)
}

func recognizeTesseract(imagePath, mode string) (string, error) {
	image, err := os.ReadFile(imagePath)
	if err != nil {
		return "", fmt.Errorf("reading image: %w", err)
	}

	client, err := ocr.New()
	if err != nil {
		return "", err
	}
	defer client.Close()

	regions, err := client.RecognizeRegions(image)
	if err != nil {
		return "", err
	}

	conv := pagemark.FromRegions(regions)
	if mode == "basic" {
		conv = conv.Basic()
	} else if mode != "advanced" {
		return "", fmt.Errorf("unknown mode %q", mode)
	}
	return conv.Markdown()
}

// jsonCachePath picks where to write the raw OCR response: beside the
// output file when one is given, otherwise beside the input image.
func jsonCachePath(imagePath, outPath string) string {
	base := imagePath
	if outPath != "" {
		base = strings.TrimSuffix(outPath, ".md")
	}
	return base + ".ocr.json"
}

func writeOutput(outPath, markdown string) {
	if outPath == "" {
		fmt.Println(markdown)
		return
	}
	if err := os.WriteFile(outPath, []byte(markdown+"\n"), 0o644); err != nil {
		fatal("writing output: %v", err)
	}
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
