package postal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"nexye/internal/core/ports"
)

// Provider is a single external postal-lookup service. Implementations
// report any failure (timeout, non-2xx, malformed body, missing place
// data) as an error so the resolver can move on to the next one.
type Provider interface {
	Name() string
	Lookup(ctx context.Context, pincode string) (ports.ResolvedLocation, error)
}

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

var errNoPlaceData = errors.New("no place data in response")

// PostalPincodeProvider queries api.postalpincode.in. The response is
// an array with an application-level Status string and a list of post
// offices; the first post office wins.
type PostalPincodeProvider struct {
	baseURL string
	http    *http.Client
}

// NewPostalPincodeProvider creates a provider against the given base
// URL. An empty baseURL selects the public service.
func NewPostalPincodeProvider(baseURL string) *PostalPincodeProvider {
	if baseURL == "" {
		baseURL = "https://api.postalpincode.in"
	}
	return &PostalPincodeProvider{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: ProviderTimeout},
	}
}

func (p *PostalPincodeProvider) Name() string { return "PostalPincode" }

func (p *PostalPincodeProvider) Lookup(ctx context.Context, pincode string) (ports.ResolvedLocation, error) {
	body, err := fetch(ctx, p.http, p.baseURL+"/pincode/"+pincode)
	if err != nil {
		return ports.ResolvedLocation{}, err
	}

	var decoded []struct {
		Status     string `json:"Status"`
		PostOffice []struct {
			District string `json:"District"`
			State    string `json:"State"`
		} `json:"PostOffice"`
	}
	if err := json.Unmarshal(body, &decoded); err != nil {
		return ports.ResolvedLocation{}, err
	}
	if len(decoded) == 0 || decoded[0].Status != "Success" || len(decoded[0].PostOffice) == 0 {
		return ports.ResolvedLocation{}, errNoPlaceData
	}

	office := decoded[0].PostOffice[0]
	return ports.ResolvedLocation{City: office.District, State: office.State}, nil
}

// ZippopotamProvider queries api.zippopotam.us for Indian postal codes.
type ZippopotamProvider struct {
	baseURL string
	http    *http.Client
}

// NewZippopotamProvider creates a provider against the given base URL.
// An empty baseURL selects the public service.
func NewZippopotamProvider(baseURL string) *ZippopotamProvider {
	if baseURL == "" {
		baseURL = "http://api.zippopotam.us"
	}
	return &ZippopotamProvider{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: ProviderTimeout},
	}
}

func (p *ZippopotamProvider) Name() string { return "ZippopotamusIN" }

func (p *ZippopotamProvider) Lookup(ctx context.Context, pincode string) (ports.ResolvedLocation, error) {
	body, err := fetch(ctx, p.http, p.baseURL+"/in/"+pincode)
	if err != nil {
		return ports.ResolvedLocation{}, err
	}

	var decoded struct {
		Places []struct {
			PlaceName string `json:"place name"`
			State     string `json:"state"`
		} `json:"places"`
	}
	if err := json.Unmarshal(body, &decoded); err != nil {
		return ports.ResolvedLocation{}, err
	}
	if len(decoded.Places) == 0 {
		return ports.ResolvedLocation{}, errNoPlaceData
	}

	return ports.ResolvedLocation{City: decoded.Places[0].PlaceName, State: decoded.Places[0].State}, nil
}

func fetch(ctx context.Context, client *http.Client, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("HTTP %d", resp.StatusCode)
	}
	return io.ReadAll(io.LimitReader(resp.Body, 1<<20))
}
