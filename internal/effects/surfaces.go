package effects

// TitleSurface is a document-level title the synchronizer writes to.
type TitleSurface interface {
	Title() string
	SetTitle(title string)
}

// MarkerSurface is a document-level class list.
type MarkerSurface interface {
	HasClass(name string) bool
	AddClass(name string)
	RemoveClass(name string)
}

// Focuser is the input-capture element. The synchronizer never creates one;
// it is registered by whoever owns it.
type Focuser interface {
	Focus()
}

// Scroller is a list view that can jump to its last entry.
type Scroller interface {
	ScrollToEnd()
}

// Document is an in-memory Title and Marker surface. Headless runs and tests
// use it to observe what the synchronizer did.
type Document struct {
	title        string
	classes      map[string]bool
	TitleWrites  int
	MarkerWrites int
}

// NewDocument returns a document whose title starts as title.
func NewDocument(title string) *Document {
	return &Document{title: title, classes: map[string]bool{}}
}

func (d *Document) Title() string { return d.title }

func (d *Document) SetTitle(title string) {
	d.title = title
	d.TitleWrites++
}

func (d *Document) HasClass(name string) bool { return d.classes[name] }

func (d *Document) AddClass(name string) {
	if d.classes == nil {
		d.classes = map[string]bool{}
	}
	d.classes[name] = true
	d.MarkerWrites++
}

func (d *Document) RemoveClass(name string) {
	delete(d.classes, name)
	d.MarkerWrites++
}
