package stats

import (
	"fmt"
	"io"
	"net/http"
	"time"
)

// DownloadDelay is slept before every download to not hammer the data site.
var DownloadDelay = 250 * time.Millisecond

func download(url string) ([]byte, error) {
	time.Sleep(DownloadDelay)

	resp, err := http.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download %s: unexpected status %s", url, resp.Status)
	}

	return io.ReadAll(resp.Body)
}
