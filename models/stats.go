// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ItemSales is an item together with the total quantity sold.
type ItemSales struct {
	Item

	// Sold is the sum of quantities over all recorded sales of the item.
	Sold int64 `json:"sold"`
}

// Sale is a single recorded sale of an item.
type Sale struct {
	ItemID   string    `json:"item_id"`
	Quantity int64     `json:"quantity"`
	SoldAt   time.Time `json:"sold_at"`
}

func (s Sale) TableName() string {
	return "sales"
}

// RecordSaleRequest is the body accepted by POST /items/{id}/sales.
type RecordSaleRequest struct {
	Quantity int64 `json:"quantity" validate:"required,min=1"`
}
