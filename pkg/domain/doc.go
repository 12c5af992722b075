// Package domain contains the business entities of the merchant cash advance
// backend: applications, fundings, their payback plans and paybacks, fees,
// expenses, syndications and the intents and transactions that move money.
// The types are free of infrastructure concerns so they can be shared by the
// schedule and stats engines, the services and the storage layer.
package domain
