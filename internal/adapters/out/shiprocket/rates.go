package shiprocket

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"nexye/internal/core/domain/model/courier"
	"nexye/internal/core/ports"
	"nexye/internal/pkg/errs"
)

// GetRates queries the serviceability endpoint and maps the courier
// list 1:1 into quotes, preserving upstream order. A non-2xx response
// or a non-200 application status is a RateUnavailableError with the
// upstream reason.
func (g *Gateway) GetRates(ctx context.Context, criteria ports.RateCriteria) ([]courier.Quote, error) {
	token, err := g.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}

	req, err := g.client.newRequest(ctx, http.MethodGet,
		"/v1/external/courier/serviceability/", token, nil)
	if err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("pickup_postcode", criteria.PickupPostcode)
	query.Set("delivery_postcode", criteria.DeliveryPostcode)
	query.Set("weight", formatNumber(criteria.Weight))
	query.Set("length", formatNumber(criteria.Length))
	query.Set("breadth", formatNumber(criteria.Breadth))
	query.Set("height", formatNumber(criteria.Height))
	query.Set("declared_value", formatNumber(criteria.DeclaredValue))
	query.Set("cod", strconv.Itoa(criteria.COD))
	req.URL.RawQuery = query.Encode()

	status, body, err := g.client.do(req)
	if err != nil {
		return nil, err
	}

	var decoded serviceabilityResponse
	_ = json.Unmarshal(body, &decoded)

	if status < 200 || status >= 300 || decoded.Status != http.StatusOK {
		message := decoded.Message
		if message == "" {
			message = "Failed to fetch courier rates"
		}
		return nil, errs.NewRateUnavailableError(message)
	}

	quotes := make([]courier.Quote, 0, len(decoded.Data.AvailableCourierCompanies))
	for _, company := range decoded.Data.AvailableCourierCompanies {
		quotes = append(quotes, courier.Quote{
			CourierCompanyID: company.CourierCompanyID,
			CourierName:      company.CourierName,
			SurfaceAvailable: bool(company.IsSurfaceAvailable),
			AirAvailable:     bool(company.IsAirAvailable),
			Rate:             float64(company.Rate),
			FreightCharge:    float64(company.FreightCharge),
			AirRate:          float64(company.AirRate),
			AirFreightCharge: float64(company.AirFreightCharge),
			EstimatedDays:    string(company.ETD),
			AirEstimatedDays: string(company.AirETD),
		})
	}
	return quotes, nil
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
