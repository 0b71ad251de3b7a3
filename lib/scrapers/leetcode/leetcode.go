package leetcode

import (
	"time"

	"leetstats/lib/restyutil"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("scrapers/leetcode")

const DefaultBaseUrl = "https://leetcode.com"

type Client struct {
	http    *resty.Client
	baseUrl string
}

type ClientOptions struct {
	// defaults to DefaultBaseUrl
	BaseUrl string
	// optional destination for full request/response dumps
	Debug restyutil.InstrumentOutput
}

func NewClient(opts ClientOptions) *Client {
	if opts.BaseUrl == "" {
		opts.BaseUrl = DefaultBaseUrl
	}

	client := resty.New()
	client.SetBaseURL(opts.BaseUrl)
	client.SetTimeout(time.Second * 10)

	restyutil.InstrumentClient(client, "scrapers/leetcode/http", opts.Debug)

	return &Client{http: client, baseUrl: opts.BaseUrl}
}
