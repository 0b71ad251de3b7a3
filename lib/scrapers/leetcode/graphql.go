package leetcode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// StatusError is returned when the API answers with a non-200 status.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected http status %d", e.Code)
}

// GraphQLError is returned when the API answers 200 but carries an
// `errors` payload instead of usable data.
type GraphQLError struct {
	Errors json.RawMessage
}

func (e *GraphQLError) Error() string {
	return fmt.Sprintf("graphql error: %s", string(e.Errors))
}

type graphqlEnvelope struct {
	Data   json.RawMessage `json:"data"`
	Errors json.RawMessage `json:"errors"`
}

func (c *Client) graphqlQuery(
	ctx context.Context,
	name,
	query string,
	variables any,
	headers map[string]string,
	output any,
) error {
	ctx, span := tracer.Start(ctx, fmt.Sprintf("graphql:%s", name))
	defer span.End()

	serialized, err := json.Marshal(variables)
	if err == nil {
		span.SetAttributes(attribute.KeyValue{
			Key:   "variables",
			Value: attribute.StringValue(string(serialized)),
		})
	}

	body := struct {
		Query     string `json:"query"`
		Variables any    `json:"variables"`
	}{Query: query, Variables: variables}

	res, err := c.http.R().
		SetContext(ctx).
		SetHeader("content-type", "application/json").
		SetHeaders(headers).
		SetBody(body).
		Post("/graphql")
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch")
		return fmt.Errorf("fetch %s: %w", name, err)
	}

	if res.StatusCode() != http.StatusOK {
		err := &StatusError{Code: res.StatusCode()}
		span.RecordError(err)
		span.SetStatus(codes.Error, "unexpected http status")
		return err
	}

	var envelope graphqlEnvelope
	err = json.Unmarshal(res.Body(), &envelope)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse json response")
		return fmt.Errorf("parse %s response: %w", name, err)
	}

	if len(envelope.Errors) > 0 && string(envelope.Errors) != "null" {
		err := &GraphQLError{Errors: envelope.Errors}
		span.RecordError(err)
		span.SetStatus(codes.Error, "graphql error payload")
		return err
	}

	if len(envelope.Data) == 0 || string(envelope.Data) == "null" {
		return nil
	}

	err = json.Unmarshal(envelope.Data, output)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse data object")
		return fmt.Errorf("parse %s data: %w", name, err)
	}
	return nil
}
