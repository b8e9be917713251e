// Package catalog holds the fixed set of services pitched to leads.
package catalog

import "github.com/octobees/leadscout/internal/entity"

var offers = []entity.ServiceOffer{
	{
		ID:          entity.ServiceCheck,
		Title:       "Website Audit",
		Price:       "£47",
		Description: "A professional mini-audit of the client’s website.",
		Color:       "bg-blue-50 border-blue-200 text-blue-900",
		Features: []string{
			"Design & UX analysis",
			"Speed & Mobile check",
			"SEO basics review",
			"Broken element detection",
			"PDF Report included",
		},
	},
	{
		ID:          entity.ServiceFix,
		Title:       "Implementation Pkg",
		Price:       "£150",
		Description: "Fix major issues found during the website audit.",
		Color:       "bg-indigo-50 border-indigo-200 text-indigo-900",
		Features: []string{
			"Fix Priority 1 issues",
			"Improve mobile speed",
			"Optimize booking/contact",
			"Before/after screenshots",
			"5–7 day delivery",
		},
	},
	{
		ID:          entity.ServiceBuild,
		Title:       "New Website Build",
		Price:       "£399",
		Description: "Fully modern, fast, mobile-friendly website.",
		Color:       "bg-purple-50 border-purple-200 text-purple-900",
		Features: []string{
			"Built from scratch",
			"Mobile-responsive",
			"Essential pages",
			"Clean design",
			"Quick delivery",
		},
	},
	{
		ID:          entity.ServiceCare,
		Title:       "Monthly Website Care",
		Price:       "£79/mo",
		Description: "Ongoing support to keep the site running smoothly.",
		Color:       "bg-emerald-50 border-emerald-200 text-emerald-900",
		Features: []string{
			"Monthly edits",
			"Speed checks",
			"Security monitoring",
			"Content updates",
			"Priority support",
		},
	},
}

// Offers returns a copy of the catalog in display order.
func Offers() []entity.ServiceOffer {
	out := make([]entity.ServiceOffer, len(offers))
	for i, o := range offers {
		o.Features = append([]string(nil), o.Features...)
		out[i] = o
	}
	return out
}

// Lookup finds the offer for id.
func Lookup(id entity.ServiceID) (entity.ServiceOffer, bool) {
	for _, o := range Offers() {
		if o.ID == id {
			return o, true
		}
	}
	return entity.ServiceOffer{}, false
}

// PitchLabel maps a service id to the wording used in outreach emails.
func PitchLabel(id entity.ServiceID) string {
	switch id {
	case entity.ServiceBuild:
		return "New Website"
	case entity.ServiceFix:
		return "Mobile Optimization"
	case entity.ServiceCare:
		return "Reputation Management"
	default:
		return "Website Audit"
	}
}
