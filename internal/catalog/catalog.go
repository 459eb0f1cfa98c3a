// Package catalog holds the demo product fixtures the storefront ships with.
package catalog

import (
	"storefront-api/internal/domain"

	"github.com/shopspring/decimal"
)

// Products returns a fresh copy of the demo catalog.
func Products() []domain.Product {
	return []domain.Product{
		{
			ID:          "1",
			Name:        "Wireless Bluetooth Headphones",
			Description: "Over-ear headphones with active noise cancellation and 30-hour battery life",
			Price:       decimal.RequireFromString("129.99"),
			Category:    "electronics",
			Image:       "/images/headphones.jpg",
			Stock:       45,
			Rating:      4.5,
			ReviewCount: 328,
			Tags:        []string{"audio", "wireless", "noise-cancelling"},
		},
		{
			ID:          "2",
			Name:        "Smart Fitness Watch",
			Description: "Heart-rate tracking, GPS and a week of battery on a single charge",
			Price:       decimal.RequireFromString("249.99"),
			Category:    "electronics",
			Image:       "/images/watch.jpg",
			Stock:       30,
			Rating:      4.7,
			ReviewCount: 512,
			Tags:        []string{"fitness", "wearable"},
		},
		{
			ID:          "3",
			Name:        "Mechanical Keyboard",
			Description: "Tenkeyless layout with hot-swappable switches and PBT keycaps",
			Price:       decimal.RequireFromString("159.99"),
			Category:    "electronics",
			Image:       "/images/keyboard.jpg",
			Stock:       22,
			Rating:      4.8,
			ReviewCount: 204,
			Tags:        []string{"typing", "mechanical"},
		},
		{
			ID:          "4",
			Name:        "Laptop Stand",
			Description: "Aluminium stand with adjustable height and cable routing",
			Price:       decimal.RequireFromString("49.99"),
			Category:    "accessories",
			Image:       "/images/stand.jpg",
			Stock:       80,
			Rating:      4.3,
			ReviewCount: 97,
			Tags:        []string{"desk", "ergonomics"},
		},
		{
			ID:          "5",
			Name:        "USB-C Hub",
			Description: "7-in-1 hub with HDMI, card reader and 100W pass-through charging",
			Price:       decimal.RequireFromString("79.99"),
			Category:    "accessories",
			Image:       "/images/hub.jpg",
			Stock:       60,
			Rating:      4.1,
			ReviewCount: 156,
			Tags:        []string{"usb-c", "connectivity"},
		},
		{
			ID:          "6",
			Name:        "Wireless Mouse",
			Description: "Silent-click ergonomic mouse with adjustable DPI",
			Price:       decimal.RequireFromString("39.99"),
			Category:    "accessories",
			Image:       "/images/mouse.jpg",
			Stock:       120,
			Rating:      4.2,
			ReviewCount: 289,
			Tags:        []string{"wireless", "ergonomics"},
		},
		{
			ID:          "7",
			Name:        "4K Monitor",
			Description: "27-inch IPS panel with USB-C input and factory calibration",
			Price:       decimal.RequireFromString("349.99"),
			Category:    "electronics",
			Image:       "/images/monitor.jpg",
			Stock:       15,
			Rating:      4.6,
			ReviewCount: 178,
			Tags:        []string{"display", "4k"},
		},
		{
			ID:          "8",
			Name:        "Desk Lamp",
			Description: "LED lamp with wireless charging pad and adjustable colour temperature",
			Price:       decimal.RequireFromString("29.99"),
			Category:    "home",
			Image:       "/images/lamp.jpg",
			Stock:       95,
			Rating:      4.0,
			ReviewCount: 64,
			Tags:        []string{"lighting", "desk"},
		},
	}
}
