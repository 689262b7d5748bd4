// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gen

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/consensys/bavard"
	log "github.com/sirupsen/logrus"
)

const (
	copyrightHolder = "Hayabusa Cloud Co., Ltd."
	copyrightYear   = 2026
	generatedBy     = "fngen"
)

// target binds one package model to the files it renders.
type target struct {
	model Model
	dir   string
	files []entry
}

type entry struct {
	file string
	tmpl string
}

// familyFiles is the same for every generated package: one file per family.
var familyFiles = []entry{
	{file: "predicate.go", tmpl: "predicate.go.tmpl"},
	{file: "consumer.go", tmpl: "consumer.go.tmpl"},
	{file: "function.go", tmpl: "function.go.tmpl"},
}

// targets returns the generation work list with output paths rooted at
// outRoot.
func targets(outRoot string) []target {
	return []target{
		{model: Root(), dir: outRoot, files: familyFiles},
		{model: Seg(), dir: filepath.Join(outRoot, "seg"), files: familyFiles},
	}
}

// generate renders every target into outRoot using the templates under
// tmplDir.
func generate(outRoot, tmplDir string) error {
	bgen := bavard.NewBatchGenerator(copyrightHolder, copyrightYear, generatedBy)
	for _, t := range targets(outRoot) {
		if err := os.MkdirAll(t.dir, 0o755); err != nil {
			return err
		}
		entries := make([]bavard.Entry, len(t.files))
		for i, e := range t.files {
			entries[i] = bavard.Entry{
				File:      filepath.Join(t.dir, e.file),
				Templates: []string{e.tmpl},
			}
			log.Debugf("rendering %s", entries[i].File)
		}
		if err := bgen.Generate(t.model, t.model.Pkg, tmplDir, entries...); err != nil {
			return err
		}
	}
	return nil
}

// templateDir locates the template directory under the repository root.
func templateDir(root string) string {
	return filepath.Join(root, "internal", "gen", "templates")
}

// Run regenerates every generated file under root, the repository root.
func Run(root string) error {
	return generate(root, templateDir(root))
}

// Check renders into a staging directory and returns the root-relative
// paths of committed files that differ from what the templates produce.
func Check(root string) ([]string, error) {
	staging, err := os.MkdirTemp("", "fngen-*")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(staging)

	if err := generate(staging, templateDir(root)); err != nil {
		return nil, err
	}

	var stale []string
	for _, t := range targets(root) {
		for _, e := range t.files {
			rel, err := filepath.Rel(root, filepath.Join(t.dir, e.file))
			if err != nil {
				return nil, err
			}
			want, err := os.ReadFile(filepath.Join(staging, rel))
			if err != nil {
				return nil, err
			}
			got, err := os.ReadFile(filepath.Join(root, rel))
			if err != nil || !bytes.Equal(got, want) {
				stale = append(stale, rel)
			}
		}
	}
	return stale, nil
}
