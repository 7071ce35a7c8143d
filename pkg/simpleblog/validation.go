package simpleblog

import "strings"

// ValidateNew checks a creation payload and returns the normalized payload
// with defaults applied: Alt and MetaTitle fall back to Title, and
// MetaDescription falls back to Description. Length limits are enforced
// after default-filling, so a defaulted meta field that exceeds its limit is
// still rejected. Pure function, no I/O.
func ValidateNew(req CreatePostRequest) (CreatePostRequest, ValidationErrors) {
	var errs ValidationErrors

	req.Title = strings.TrimSpace(req.Title)

	errs = appendRequired(errs, "title", req.Title)
	errs = appendRequired(errs, "description", req.Description)
	errs = appendRequired(errs, "content", req.Content)
	errs = appendRequired(errs, "imageUrl", req.ImageURL)

	if req.Alt == "" {
		req.Alt = req.Title
	}
	if req.MetaTitle == "" {
		req.MetaTitle = req.Title
	}
	if req.MetaDescription == "" {
		req.MetaDescription = req.Description
	}

	errs = appendTooLong(errs, "title", req.Title, MaxTitleLength)
	errs = appendTooLong(errs, "description", req.Description, MaxDescriptionLength)
	errs = appendTooLong(errs, "metaTitle", req.MetaTitle, MaxMetaTitleLength)
	errs = appendTooLong(errs, "metaDescription", req.MetaDescription, MaxMetaDescriptionLength)

	return req, errs
}

// ValidatePatch checks only the fields a partial update supplies. Supplying
// an empty value for any field fails with ReasonRequired, since every field
// is mandatory on the stored record.
func ValidatePatch(patch UpdatePostRequest) ValidationErrors {
	var errs ValidationErrors

	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		errs = appendRequired(errs, "title", title)
		errs = appendTooLong(errs, "title", title, MaxTitleLength)
	}
	if patch.Description != nil {
		errs = appendRequired(errs, "description", *patch.Description)
		errs = appendTooLong(errs, "description", *patch.Description, MaxDescriptionLength)
	}
	if patch.Content != nil {
		errs = appendRequired(errs, "content", *patch.Content)
	}
	if patch.ImageURL != nil {
		errs = appendRequired(errs, "imageUrl", *patch.ImageURL)
	}
	if patch.Alt != nil {
		errs = appendRequired(errs, "alt", *patch.Alt)
	}
	if patch.MetaTitle != nil {
		errs = appendRequired(errs, "metaTitle", *patch.MetaTitle)
		errs = appendTooLong(errs, "metaTitle", *patch.MetaTitle, MaxMetaTitleLength)
	}
	if patch.MetaDescription != nil {
		errs = appendRequired(errs, "metaDescription", *patch.MetaDescription)
		errs = appendTooLong(errs, "metaDescription", *patch.MetaDescription, MaxMetaDescriptionLength)
	}

	return errs
}

func appendRequired(errs ValidationErrors, field, value string) ValidationErrors {
	if strings.TrimSpace(value) == "" {
		return append(errs, &ValidationError{Field: field, Reason: ReasonRequired})
	}
	return errs
}

func appendTooLong(errs ValidationErrors, field, value string, limit int) ValidationErrors {
	if len([]rune(value)) > limit {
		return append(errs, &ValidationError{Field: field, Reason: ReasonTooLong, Limit: limit})
	}
	return errs
}
