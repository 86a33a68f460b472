package v1handler

import (
	"net/http"
	"recond/pkg/domain"
	"recond/pkg/logger"
	"recond/pkg/serrors"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func targetIDFromRequest(r *http.Request) (domain.TargetID, error) {
	id, err := uuid.Parse(r.PathValue("targetID"))
	if err != nil {
		return domain.TargetID{}, serrors.Wrap(serrors.ErrBadRequest, err, "invalid target ID")
	}

	return domain.TargetID(id), nil
}

// ReconcileRootDomains aligns the stored root domains of a target with the
// observed name list carried in the request body.
func (h *Handler) ReconcileRootDomains(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	targetID, err := targetIDFromRequest(r)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	observed, err := decodeStringList(r, "observed")
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	logger.Info(ctx, "reconciling root domains",
		zap.Stringer("operatorID", uuid.UUID(GetOperatorIDFromContext(ctx))),
		zap.Int("observed", len(observed)))

	roots, err := h.deps.Recon.ReconcileTarget(ctx, targetID, observed)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(w, http.StatusOK, encodeRootDomainList(roots))
}

// ListRootDomains returns the root domains of a target with their subdomains.
func (h *Handler) ListRootDomains(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	targetID, err := targetIDFromRequest(r)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	roots, err := h.deps.Recon.RootDomains(ctx, targetID)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(w, http.StatusOK, encodeRootDomainList(roots))
}

// DeleteRootDomains removes the root domains named in the request body,
// cascading to their subdomains and notes.
func (h *Handler) DeleteRootDomains(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	targetID, err := targetIDFromRequest(r)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	names, err := decodeStringList(r, "names")
	if err != nil {
		writeError(ctx, w, err)

		return
	}
	if len(names) == 0 {
		writeError(ctx, w, serrors.With(serrors.ErrBadRequest, "no root domain names given"))

		return
	}

	logger.Info(ctx, "deleting root domains",
		zap.Stringer("operatorID", uuid.UUID(GetOperatorIDFromContext(ctx))),
		zap.Strings("names", names))

	if err := h.deps.Recon.DeleteRootDomains(ctx, targetID, names); err != nil {
		writeError(ctx, w, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// SubmitDiscoveries accepts a batch of discovery records for a root domain.
// By default records are enqueued as background jobs; with ?mode=sync they are
// ingested before the response is written.
func (h *Handler) SubmitDiscoveries(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	targetID, err := targetIDFromRequest(r)
	if err != nil {
		writeError(ctx, w, err)

		return
	}
	rootDomain := r.PathValue("rootDomain")

	discs, err := decodeDiscoveryList(r)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	if r.URL.Query().Get("mode") == "sync" {
		ingested, err := h.deps.Recon.IngestDiscoveries(ctx, targetID, rootDomain, discs)
		if err != nil {
			writeError(ctx, w, err)

			return
		}

		e := &jx.Encoder{}
		e.ObjStart()
		e.FieldStart("ingested")
		e.Int(ingested)
		e.ObjEnd()
		writeJSON(w, http.StatusOK, e)

		return
	}

	enqueued, err := h.deps.Recon.EnqueueDiscoveries(ctx, targetID, rootDomain, discs)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	e := &jx.Encoder{}
	e.ObjStart()
	e.FieldStart("enqueued")
	e.Int(enqueued)
	e.ObjEnd()
	writeJSON(w, http.StatusAccepted, e)
}

// UploadSubdomains registers externally supplied hostnames under the target's
// root domains and returns the subdomains created by the call.
func (h *Handler) UploadSubdomains(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	targetID, err := targetIDFromRequest(r)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	names, err := decodeStringList(r, "names")
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	created, err := h.deps.Recon.UploadSubdomains(ctx, targetID, names)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	e := &jx.Encoder{}
	e.ObjStart()
	e.FieldStart("subdomains")
	e.ArrStart()
	for i := range created {
		encodeSubdomain(e, &created[i])
	}
	e.ArrEnd()
	e.ObjEnd()
	writeJSON(w, http.StatusCreated, e)
}

// DeleteSubdomains removes every subdomain of a target and reports the count.
func (h *Handler) DeleteSubdomains(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	targetID, err := targetIDFromRequest(r)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	logger.Info(ctx, "deleting target subdomains",
		zap.Stringer("operatorID", uuid.UUID(GetOperatorIDFromContext(ctx))))

	deleted, err := h.deps.Recon.DeleteSubdomainsOf(ctx, targetID)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	e := &jx.Encoder{}
	e.ObjStart()
	e.FieldStart("deleted")
	e.Int64(deleted)
	e.ObjEnd()
	writeJSON(w, http.StatusOK, e)
}

// decodeStringList reads {"<field>": ["a", "b", ...]} from the request body.
func decodeStringList(r *http.Request, field string) ([]string, error) {
	var out []string
	d := jx.Decode(r.Body, 4096)
	if err := d.Obj(func(d *jx.Decoder, key string) error {
		if key != field {
			return d.Skip()
		}

		return d.Arr(func(d *jx.Decoder) error {
			s, err := d.Str()
			if err != nil {
				return errors.Wrap(err, "string element")
			}
			out = append(out, s)

			return nil
		})
	}); err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body")
	}

	return out, nil
}

// decodeDiscoveryList reads {"discoveries": [{...}, ...]} from the request body.
func decodeDiscoveryList(r *http.Request) ([]domain.Discovery, error) {
	var out []domain.Discovery
	d := jx.Decode(r.Body, 4096)
	if err := d.Obj(func(d *jx.Decoder, key string) error {
		if key != "discoveries" {
			return d.Skip()
		}

		return d.Arr(func(d *jx.Decoder) error {
			disc, err := decodeDiscovery(d)
			if err != nil {
				return err
			}
			out = append(out, disc)

			return nil
		})
	}); err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body")
	}

	return out, nil
}

func decodeDiscovery(d *jx.Decoder) (domain.Discovery, error) {
	var disc domain.Discovery
	err := d.Obj(func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "subdomain":
			disc.Subdomain, err = d.Str()
		case "services":
			err = d.Arr(func(d *jx.Decoder) error {
				svc, err := decodeService(d)
				if err != nil {
					return err
				}
				disc.Services = append(disc.Services, svc)

				return nil
			})
		case "tags":
			err = d.Arr(func(d *jx.Decoder) error {
				tag, err := d.Str()
				if err != nil {
					return errors.Wrap(err, "tag")
				}
				disc.Tags = append(disc.Tags, tag)

				return nil
			})
		case "tool":
			disc.Tool, err = d.Str()
		case "rawLine":
			disc.RawLine, err = d.Str()
		case "observedAt":
			var s string
			s, err = d.Str()
			if err == nil {
				disc.ObservedAt, err = time.Parse(time.RFC3339, s)
			}
		default:
			err = d.Skip()
		}

		return errors.Wrap(err, key)
	})

	return disc, err //nolint: wrapcheck
}

func decodeService(d *jx.Decoder) (domain.Service, error) {
	var svc domain.Service
	err := d.Obj(func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "protocol":
			svc.Protocol, err = d.Str()
		case "port":
			svc.Port, err = d.Int()
		case "name":
			svc.Name, err = d.Str()
		case "banner":
			svc.Banner, err = d.Str()
		default:
			err = d.Skip()
		}

		return errors.Wrap(err, key)
	})

	return svc, err //nolint: wrapcheck
}

func encodeRootDomainList(roots []domain.RootDomain) *jx.Encoder {
	e := &jx.Encoder{}
	e.ObjStart()
	e.FieldStart("rootDomains")
	e.ArrStart()
	for i := range roots {
		encodeRootDomain(e, &roots[i])
	}
	e.ArrEnd()
	e.ObjEnd()

	return e
}

func encodeRootDomain(e *jx.Encoder, root *domain.RootDomain) {
	e.ObjStart()
	e.FieldStart("id")
	e.Str(uuid.UUID(root.ID).String())
	e.FieldStart("targetId")
	e.Str(uuid.UUID(root.TargetID).String())
	e.FieldStart("name")
	e.Str(root.Name)
	if root.Note != nil {
		e.FieldStart("note")
		e.ObjStart()
		e.FieldStart("id")
		e.Str(uuid.UUID(root.Note.ID).String())
		e.FieldStart("content")
		e.Str(root.Note.Content)
		e.FieldStart("createdAt")
		e.Str(root.Note.CreatedAt.Format(time.RFC3339))
		e.ObjEnd()
	}
	if root.Subdomains != nil {
		e.FieldStart("subdomains")
		e.ArrStart()
		for i := range root.Subdomains {
			encodeSubdomain(e, &root.Subdomains[i])
		}
		e.ArrEnd()
	}
	e.FieldStart("createdAt")
	e.Str(root.CreatedAt.Format(time.RFC3339))
	e.FieldStart("updatedAt")
	e.Str(root.UpdatedAt.Format(time.RFC3339))
	e.ObjEnd()
}

func encodeSubdomain(e *jx.Encoder, sub *domain.Subdomain) {
	e.ObjStart()
	e.FieldStart("id")
	e.Str(uuid.UUID(sub.ID).String())
	e.FieldStart("rootDomainId")
	e.Str(uuid.UUID(sub.RootDomainID).String())
	e.FieldStart("name")
	e.Str(sub.Name)
	e.FieldStart("services")
	e.ArrStart()
	for _, svc := range sub.Services {
		e.ObjStart()
		e.FieldStart("protocol")
		e.Str(svc.Protocol)
		e.FieldStart("port")
		e.Int(svc.Port)
		if svc.Name != "" {
			e.FieldStart("name")
			e.Str(svc.Name)
		}
		if svc.Banner != "" {
			e.FieldStart("banner")
			e.Str(svc.Banner)
		}
		e.ObjEnd()
	}
	e.ArrEnd()
	e.FieldStart("tags")
	e.ArrStart()
	for _, tag := range sub.Tags {
		e.Str(tag)
	}
	e.ArrEnd()
	e.FieldStart("createdAt")
	e.Str(sub.CreatedAt.Format(time.RFC3339))
	e.FieldStart("updatedAt")
	e.Str(sub.UpdatedAt.Format(time.RFC3339))
	e.ObjEnd()
}
