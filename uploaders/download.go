package uploaders

import (
	"fmt"
	"net/url"
	"strings"
)

// URLStyle selects how the public download url is built.
type URLStyle string

const (
	// URLStyleName gives {downloadUrl}/file/{bucket}/{fileName}.
	URLStyleName URLStyle = "name"
	// URLStyleID gives {downloadUrl}/b2api/v2/b2_download_file_by_id?fileId={id}.
	URLStyleID URLStyle = "id"
)

// ParseURLStyle ...
func ParseURLStyle(s string) (URLStyle, error) {
	switch style := URLStyle(s); style {
	case URLStyleName, URLStyleID:
		return style, nil
	default:
		return "", fmt.Errorf("invalid url style (%s), available: %s, %s", s, URLStyleName, URLStyleID)
	}
}

// DownloadURLByName ...
func DownloadURLByName(downloadURL, bucketName, fileName string) string {
	return strings.TrimSuffix(downloadURL, "/") + "/file/" + url.PathEscape(bucketName) + "/" + escapeFileName(fileName)
}

// DownloadURLByID ...
func DownloadURLByID(downloadURL, fileID string) string {
	query := url.Values{"fileId": {fileID}}
	return strings.TrimSuffix(downloadURL, "/") + apiPrefix + "/b2_download_file_by_id?" + query.Encode()
}
