package tui

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	list "github.com/charmbracelet/bubbles/list"

	"goplot/internal/geom"
)

type fileItem struct {
	title, desc string
	path        string
}

func (f fileItem) Title() string       { return f.title }
func (f fileItem) Description() string { return f.desc }
func (f fileItem) FilterValue() string { return f.title }

func (m *Model) refreshDir() {
	entries, err := os.ReadDir(m.cwd)
	if err != nil {
		m.setError(fmt.Errorf("read dir: %w", err))
		return
	}
	var items []list.Item
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !geom.Supported(name) {
			continue
		}
		items = append(items, fileItem{title: name, desc: strings.ToLower(filepath.Ext(name)), path: filepath.Join(m.cwd, name)})
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].(fileItem).Title() < items[j].(fileItem).Title() })
	m.items = items
	m.l.SetItems(items)
	if len(items) == 0 {
		m.setStatus("no annotation files in %s", m.cwd)
	}
}

// loadPath replaces the annotations with the contents of p.
func (m *Model) loadPath(p string) error {
	d, err := geom.Load(p)
	if err != nil {
		err = fmt.Errorf("load %s: %w", filepath.Base(p), err)
		m.setError(err)
		return err
	}
	log.Printf("annotations: %s pts=%d lines=%d bbox=%+v", p, len(d.Points), len(d.Lines), d.BBox)
	m.selPath = p
	m.annot = d
	m.segs = d.Segments()
	m.setStatus("loaded: %s  pts=%d lines=%d", filepath.Base(p), len(d.Points), len(d.Lines))
	return nil
}
