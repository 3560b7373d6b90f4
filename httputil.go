package folio

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// contains http utils to deal with remote market data services

// quoteTimeout bounds every market data request so a hung feed cannot block
// the caller.
const quoteTimeout = 10 * time.Second

func newQuoteClient() *http.Client {
	return &http.Client{Timeout: quoteTimeout}
}

// jwget performs an HTTP GET request and unmarshals the JSON response into
// the provided data structure.
func jwget(client *http.Client, addr string, data interface{}) error {
	resp, err := client.Get(addr)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	Log.Debug().Str("url", addr).Str("status", resp.Status).Msg("GET")
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return err
	}
	return json.Unmarshal(buf.Bytes(), data)
}
