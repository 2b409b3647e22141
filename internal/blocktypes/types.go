package blocktypes

// BlockType describes one content-block kind the editor can place on a page.
type BlockType struct {
	// Type identifier (set during YAML unmarshaling from the map key)
	ID string `yaml:"-" json:"id"`

	// Display information
	DisplayName string `yaml:"display_name" json:"display_name"`

	// FileBearing marks block types whose metadata carries an uploaded
	// file (originalFileName). Only these participate in suggested-filename
	// enrichment when a page is renamed.
	FileBearing bool `yaml:"file_bearing" json:"file_bearing"`
}

// catalog is the on-disk shape of the embedded YAML file
type catalog struct {
	Blocks map[string]BlockType `yaml:"blocks"`
}
