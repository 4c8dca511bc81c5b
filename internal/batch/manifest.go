package batch

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// ManifestEntry represents one rendered mesh in the output manifest.
type ManifestEntry struct {
	Name     string `json:"name"`
	Mesh     string `json:"mesh"`
	Image    string `json:"image,omitempty"`
	Vertices int    `json:"vertices"`
	Faces    int    `json:"faces"`
	Culled   int    `json:"culled"`
	Pixels   int    `json:"pixels"`
	Error    string `json:"error,omitempty"`
}

// WriteManifest writes manifest.json to path. Image paths are relative to
// the manifest's directory.
func WriteManifest(path string, results []Result) error {
	base := filepath.Dir(path)
	entries := make([]ManifestEntry, len(results))
	for i, r := range results {
		e := ManifestEntry{
			Name:     r.Name,
			Mesh:     r.MeshPath,
			Vertices: r.Vertices,
			Faces:    r.Faces,
			Culled:   r.Stats.Culled,
			Pixels:   r.Stats.Pixels,
			Error:    r.Error,
		}
		if r.Success {
			e.Image = r.OutPath
			if rel, err := filepath.Rel(base, r.OutPath); err == nil {
				e.Image = filepath.ToSlash(rel)
			}
		}
		entries[i] = e
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(base, 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
