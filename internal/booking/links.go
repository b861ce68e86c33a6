package booking

import (
	"fmt"
	"net/url"

	"github.com/neexbeast/farescout/internal/location"
)

// Link is an airline booking page pre-filled with the route and date.
type Link struct {
	Airline string `json:"airline"`
	URL     string `json:"url"`
}

type linkTemplate struct {
	airline string
	format  string
}

var domesticTemplates = []linkTemplate{
	{"Air China", "https://www.airchina.com.cn/en/booking?origin=%s&destination=%s&date=%s&adults=1"},
	{"China Eastern", "https://us.ceair.com/en/booking?dep=%s&arr=%s&date=%s"},
	{"China Southern", "https://www.csair.com/en/booking?from=%s&to=%s&date=%s"},
}

var internationalTemplates = []linkTemplate{
	{"Emirates", "https://www.emirates.com/us/english/book/flights.aspx?orig=%s&dest=%s&date=%s"},
	{"United", "https://www.united.com/en/us/fsr/choose-flights?f=%s&t=%s&d=%s&tt=1"},
	{"Qatar Airways", "https://www.qatarairways.com/booking?origin=%s&destination=%s&departDate=%s"},
}

// Links returns airline booking pages for the route, picking carriers by kind.
func Links(origin, destination, date string, kind location.RouteType) []Link {
	templates := internationalTemplates
	if kind == location.Domestic {
		templates = domesticTemplates
	}

	o, d, dt := url.QueryEscape(origin), url.QueryEscape(destination), url.QueryEscape(date)
	links := make([]Link, 0, len(templates))
	for _, t := range templates {
		links = append(links, Link{Airline: t.airline, URL: fmt.Sprintf(t.format, o, d, dt)})
	}
	return links
}
