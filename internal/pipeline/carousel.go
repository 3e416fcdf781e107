package pipeline

// File is a selected local file queued for upload.
type File struct {
	Name    string
	Content []byte
}

// Carousel collects the images for an Instagram multi-image post.
// Additions beyond CarouselMax are silently truncated to whatever slots
// remain, matching the selection modal's behavior.
type Carousel struct {
	files []File
}

func NewCarousel() *Carousel {
	return &Carousel{}
}

// Add appends files up to the carousel cap and returns how many were
// accepted.
func (c *Carousel) Add(files ...File) int {
	remaining := CarouselMax - len(c.files)
	if remaining <= 0 {
		return 0
	}
	if len(files) > remaining {
		files = files[:remaining]
	}
	c.files = append(c.files, files...)
	return len(files)
}

func (c *Carousel) Count() int {
	return len(c.files)
}

func (c *Carousel) Files() []File {
	return c.files
}

// validate applies the pre-publish rules: every file JPEG, count within
// [CarouselMin, CarouselMax].
func (c *Carousel) validate() error {
	if len(c.files) < CarouselMin {
		return ErrCarouselTooSmall
	}
	for _, f := range c.files {
		if err := ValidateInstagramImage(f.Content); err != nil {
			return err
		}
	}
	return nil
}
