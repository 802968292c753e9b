package rules

import (
	"path/filepath"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"

	"digiwork-hub.com/digiwork-hub/internal/constants"
)

func Comment(desc string) Result {
	if !between(desc, 10, 500) {
		return reject("Description should be 10-500 characters")
	}
	return accept()
}

// Reply validates a message reply and the names of its uploaded files.
func Reply(desc string, fileNames []string) Result {
	if r := Comment(desc); !r.OK() {
		return r
	}
	return Files(fileNames)
}

func Message(msgTitle, desc string, fileNames []string) Result {
	switch {
	case msgTitle == "" || desc == "":
		return reject("Name and description should not be empty")
	case !between(msgTitle, 15, 100):
		return reject("Name should be 15-100 characters")
	case !between(desc, 50, 3000):
		return reject("Description should be 50-3000 characters")
	}
	return Files(fileNames)
}

// Extension returns the lowercased extension of name without the dot.
func Extension(name string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
}

func allowed(name string, set mapset.Set[string]) bool {
	ext := Extension(name)
	return ext != "" && set.Contains(ext)
}

func Files(names []string) Result {
	for _, name := range names {
		if !allowed(name, constants.AllowedFileExtensions) {
			return reject("The file type is not allowed")
		}
	}
	if len(names) > constants.MaxUploadFiles {
		return reject("You can only upload up to 5 files")
	}
	return accept()
}

func Attachment(name string) Result {
	if !allowed(name, constants.AllowedFileExtensions) {
		return reject("The file type is not allowed")
	}
	return accept()
}

func Image(name string) Result {
	if !allowed(name, constants.AllowedImageExtensions) {
		return reject("The image type is not allowed")
	}
	return accept()
}
