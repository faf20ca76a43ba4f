package presenter

import (
	"github.com/johnquangdev/contact-qa/internal/adapter/dto/common"
	"github.com/johnquangdev/contact-qa/internal/adapter/dto/form"
	"github.com/johnquangdev/contact-qa/internal/domain/entities"
	"github.com/johnquangdev/contact-qa/internal/usecase/assessment"
)

// ToDraftResponse converts a loaded draft to DraftResponse DTO
func ToDraftResponse(d entities.DraftFormData, notice *entities.Notice) *form.DraftResponse {
	return &form.DraftResponse{
		Draft:  d,
		Notice: common.ToNotice(notice),
	}
}

// ToStateResponse converts a controller state to StateResponse DTO
func ToStateResponse(st assessment.State) form.StateResponse {
	return form.StateResponse{
		Form:              st.Form,
		HasUnsavedChanges: st.HasUnsavedChanges,
		PendingContactID:  st.PendingContactID,
		Assessment:        st.Assessment,
		Generating:        st.Generating,
		Submitting:        st.Submitting,
	}
}

// ToResultResponse converts a controller result to ResultResponse DTO.
// A mount notice is reported when the result carries none of its own.
func ToResultResponse(res assessment.Result, mountNotice *entities.Notice) *form.ResultResponse {
	notice := res.Notice
	if notice == nil {
		notice = mountNotice
	}
	return &form.ResultResponse{
		State:    ToStateResponse(res.State),
		Notice:   common.ToNotice(notice),
		Redirect: res.Redirect,
	}
}
