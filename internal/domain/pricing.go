package domain

import (
	"strconv"
	"strings"
)

// CalculateTotalAmount computes the owner-facing total of an appointment:
// the base visit price, plus every service price across every pet, plus
// the comuna surcharge when present.
//
// The base price is added exactly once per appointment, never per pet.
func CalculateTotalAmount(mascotas []Mascota, location LocationData, precioBase float64) float64 {
	total := precioBase

	for _, mascota := range mascotas {
		for _, servicio := range mascota.Servicios {
			total += servicio.Precio.Float64()
		}
	}

	if location.CostoAdicionalComuna != nil {
		total += location.CostoAdicionalComuna.Float64()
	}

	return total
}

// CalculateTotalAmountVet computes the veterinarian-facing payout total:
// the sum of per-service payouts across every pet. Services without a
// payout amount contribute 0.
func CalculateTotalAmountVet(mascotas []Mascota) float64 {
	total := 0.0

	for _, mascota := range mascotas {
		for _, servicio := range mascota.Servicios {
			if servicio.PrecioVet != nil {
				total += servicio.PrecioVet.Float64()
			}
		}
	}

	return total
}

// ItemizedServices renders one "<nombre>: $<precio>" line per distinct
// service across all pets, joined by newlines. Identical lines collapse
// (set semantics) while the first-seen order is kept. The result feeds
// the notification message composer.
func ItemizedServices(mascotas []Mascota) string {
	seen := make(map[string]struct{})
	lines := make([]string, 0)

	for _, mascota := range mascotas {
		for _, servicio := range mascota.Servicios {
			line := servicio.Nombre + ": $" + FormatAmount(servicio.Precio.Float64())
			if _, ok := seen[line]; ok {
				continue
			}
			seen[line] = struct{}{}
			lines = append(lines, line)
		}
	}

	return strings.Join(lines, "\n")
}

// FormatAmount renders a monetary amount without trailing zeros.
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
