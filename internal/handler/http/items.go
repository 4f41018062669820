package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-retail-api/internal/render"
	"github.com/MKhiriev/go-retail-api/internal/validators"
	"github.com/MKhiriev/go-retail-api/models"
)

var (
	itemMessages         = messages{http.StatusNotFound: msgItemNotFound}
	itemCreationMessages = messages{
		http.StatusInternalServerError: msgCreationFailed,
		http.StatusUnprocessableEntity: msgCreationFailed,
	}
)

func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.services.ItemService.ListItems(r.Context())
	if err != nil {
		h.writeFailure(w, r, "*Handler.listItems", err, nil)
		return
	}

	for i := range items {
		items[i].ImageURL = imageURL(r, items[i].ID, false)
	}

	h.writeCollection(w, r, render.ItemKind, items)
}

func (h *Handler) getItem(w http.ResponseWriter, r *http.Request) {
	id := validatedRequest(r).ParamInt("id")

	item, err := h.services.ItemService.GetItem(r.Context(), id)
	if err != nil {
		h.writeFailure(w, r, "*Handler.getItem", err, itemMessages)
		return
	}

	review := h.services.AppInfoService.GetStaffReview(r.Context())
	item.ImageURL = imageURL(r, item.ID, false)
	item.StaffReview = &review
	h.writeObject(w, r, http.StatusOK, render.ItemKind, item)
}

func (h *Handler) createItem(w http.ResponseWriter, r *http.Request) {
	upsert, _ := validators.BodyAs[models.ItemUpsert](validatedRequest(r))

	item, err := h.services.ItemService.CreateItem(r.Context(), upsert)
	if err != nil {
		h.writeFailure(w, r, "*Handler.createItem", err, itemCreationMessages)
		return
	}

	h.writeObject(w, r, http.StatusCreated, render.ItemKind, item)
}

func (h *Handler) updateItem(w http.ResponseWriter, r *http.Request) {
	req := validatedRequest(r)
	upsert, _ := validators.BodyAs[models.ItemUpsert](req)

	item, err := h.services.ItemService.UpdateItem(r.Context(), req.ParamInt("id"), upsert)
	if err != nil {
		h.writeFailure(w, r, "*Handler.updateItem", err, itemMessages)
		return
	}

	h.writeObject(w, r, http.StatusOK, render.ItemKind, item)
}

func (h *Handler) deleteItem(w http.ResponseWriter, r *http.Request) {
	id := validatedRequest(r).ParamInt("id")

	item, err := h.services.ItemService.DeleteItem(r.Context(), id)
	if err != nil {
		h.writeFailure(w, r, "*Handler.deleteItem", err, itemMessages)
		return
	}

	h.writeObject(w, r, http.StatusOK, render.ItemKind, item)
}

// listItemDetails serves the v2 collection: every item gets a thumbnail link.
func (h *Handler) listItemDetails(w http.ResponseWriter, r *http.Request) {
	items, err := h.services.ItemService.ListItems(r.Context())
	if err != nil {
		h.writeFailure(w, r, "*Handler.listItemDetails", err, nil)
		return
	}

	details := make([]models.ItemDetail, 0, len(items))
	for _, item := range items {
		detail := models.NewItemDetail(item)
		thumbnail := imageURL(r, item.ID, true)
		detail.ThumbnailImageURL = &thumbnail
		details = append(details, detail)
	}

	h.writeCollection(w, r, render.ItemKind, details)
}

// getItemDetail serves the v2 item: both image links and the staff review.
func (h *Handler) getItemDetail(w http.ResponseWriter, r *http.Request) {
	id := validatedRequest(r).ParamInt("id")

	item, err := h.services.ItemService.GetItem(r.Context(), id)
	if err != nil {
		h.writeFailure(w, r, "*Handler.getItemDetail", err, itemMessages)
		return
	}

	detail := models.NewItemDetail(item)
	thumbnail, full := imageURL(r, item.ID, true), imageURL(r, item.ID, false)
	review := h.services.AppInfoService.GetStaffReview(r.Context())
	detail.ThumbnailImageURL = &thumbnail
	detail.FullImageURL = &full
	detail.StaffReview = &review

	h.writeObject(w, r, http.StatusOK, render.ItemKind, detail)
}

// imageURL builds the public link of an item picture from the scheme and
// host the client used.
func imageURL(r *http.Request, id int64, thumbnail bool) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}

	if thumbnail {
		return fmt.Sprintf("%s://%s/images/thumbnails/%d.jpg", scheme, r.Host, id)
	}
	return fmt.Sprintf("%s://%s/images/%d.jpg", scheme, r.Host, id)
}
