package annotation

// Project is the complete annotation document: a reference to the source
// media plus the ordered annotation collection. The project is the single
// owner of its annotations; other components reference them by index only.
type Project struct {
	MediaFile   string       `json:"media_file" yaml:"media_file"`
	FrameWidth  uint         `json:"frame_width" yaml:"frame_width"`
	FrameHeight uint         `json:"frame_height" yaml:"frame_height"`
	Annotations []Annotation `json:"annotations" yaml:"annotations"`
}

// NewProject creates an empty project referencing the given media file.
func NewProject(mediaFile string, frameWidth, frameHeight uint) *Project {
	return &Project{
		MediaFile:   mediaFile,
		FrameWidth:  frameWidth,
		FrameHeight: frameHeight,
		Annotations: []Annotation{},
	}
}

// AddAnnotation appends an annotation to the project.
func (p *Project) AddAnnotation(a Annotation) {
	p.Annotations = append(p.Annotations, a)
}

// RemoveAnnotation deletes the annotation at index i. It returns false if
// the index is out of bounds.
func (p *Project) RemoveAnnotation(i int) bool {
	if i < 0 || i >= len(p.Annotations) {
		return false
	}
	p.Annotations = append(p.Annotations[:i], p.Annotations[i+1:]...)
	return true
}

// CloneAnnotations returns a deep copy of the annotation collection,
// suitable for use as a history snapshot.
func (p *Project) CloneAnnotations() []Annotation {
	return CloneAll(p.Annotations)
}

// ReplaceAnnotations swaps in a new annotation collection, taking
// ownership of the given slice.
func (p *Project) ReplaceAnnotations(annotations []Annotation) {
	if annotations == nil {
		annotations = []Annotation{}
	}
	p.Annotations = annotations
}

// Clone returns a deep copy of the project.
func (p *Project) Clone() *Project {
	return &Project{
		MediaFile:   p.MediaFile,
		FrameWidth:  p.FrameWidth,
		FrameHeight: p.FrameHeight,
		Annotations: p.CloneAnnotations(),
	}
}
