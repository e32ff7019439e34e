package airquality

import "time"

// All payloads in this package are fixed placeholder data. The readings carry
// source "static" so no client mistakes them for sensor output.
const sourceStatic = "static"

type Reading struct {
	Lat        float64   `json:"lat"`
	Lon        float64   `json:"lon"`
	AQI        int       `json:"aqi"`
	Category   string    `json:"category"`
	PM25       float64   `json:"pm25"`
	PM10       float64   `json:"pm10"`
	O3         float64   `json:"o3"`
	NO2        float64   `json:"no2"`
	RecordedAt time.Time `json:"recorded_at"`
	Source     string    `json:"source"`
}

type ForecastPoint struct {
	Hour     int    `json:"hour"`
	AQI      int    `json:"aqi"`
	Category string `json:"category"`
	Source   string `json:"source"`
}

type MapPin struct {
	Name   string  `json:"name"`
	Lat    float64 `json:"lat"`
	Lon    float64 `json:"lon"`
	AQI    int     `json:"aqi"`
	Source string  `json:"source"`
}

type Alert struct {
	Severity string `json:"severity"`
	Title    string `json:"title"`
	Message  string `json:"message"`
	Source   string `json:"source"`
}

// StaticReading echoes the requested coordinates around a fixed reading.
func StaticReading(lat, lon float64) Reading {
	return Reading{
		Lat:        lat,
		Lon:        lon,
		AQI:        42,
		Category:   "Good",
		PM25:       9.8,
		PM10:       17.3,
		O3:         31.0,
		NO2:        12.4,
		RecordedAt: time.Now().UTC(),
		Source:     sourceStatic,
	}
}

func staticForecast() []ForecastPoint {
	return []ForecastPoint{
		{Hour: 1, AQI: 42, Category: "Good", Source: sourceStatic},
		{Hour: 2, AQI: 45, Category: "Good", Source: sourceStatic},
		{Hour: 3, AQI: 51, Category: "Moderate", Source: sourceStatic},
		{Hour: 4, AQI: 58, Category: "Moderate", Source: sourceStatic},
		{Hour: 5, AQI: 54, Category: "Moderate", Source: sourceStatic},
		{Hour: 6, AQI: 47, Category: "Good", Source: sourceStatic},
	}
}

func staticPins(loc location) []MapPin {
	return []MapPin{
		{Name: "Downtown Station", Lat: loc.Lat + 0.01, Lon: loc.Lon - 0.01, AQI: 42, Source: sourceStatic},
		{Name: "Riverside Station", Lat: loc.Lat - 0.02, Lon: loc.Lon + 0.015, AQI: 55, Source: sourceStatic},
		{Name: "Industrial Park", Lat: loc.Lat + 0.03, Lon: loc.Lon + 0.02, AQI: 78, Source: sourceStatic},
	}
}

func staticAlerts() []Alert {
	return []Alert{
		{
			Severity: "info",
			Title:    "Moderate ozone expected",
			Message:  "Ozone levels may reach moderate range this afternoon.",
			Source:   sourceStatic,
		},
	}
}
