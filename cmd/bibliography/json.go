package bibliography

import (
	"github.com/lepinkainen/biblio/internal/fileutil"
)

func writeJSON(list []Citation, filename string, overwrite bool) error {
	_, err := fileutil.WriteJSONFile(list, filename, overwrite)
	return err
}
