package dfxml

import (
	"encoding/xml"
	"io"
)

// ReadFileObjects collects every <fileobject> of a report, skipping the
// preamble.
func ReadFileObjects(r io.Reader) ([]FileObject, error) {
	dec := xml.NewDecoder(r)

	var fileObjects []FileObject
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return fileObjects, nil
		}
		if err != nil {
			return nil, err
		}

		startElem, ok := tok.(xml.StartElement)
		if !ok || startElem.Name.Local != "fileobject" {
			continue
		}

		var fo FileObject
		if err := dec.DecodeElement(&fo, &startElem); err != nil {
			return nil, err
		}
		fileObjects = append(fileObjects, fo)
	}
}
