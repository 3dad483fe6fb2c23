package aws_s3

import (
	"bytes"
	"context"
	"io"
	"strings"

	"github.com/takvimhub/event-calendar-service/pkg/code"
	"github.com/takvimhub/event-calendar-service/pkg/fileurl"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/pkg/errors"
)

func (a *AWSS3) objectKey(pathKey string) string {
	return fileurl.PathSuffixCheckAdd(a.Config.CustomPath, "/") + pathKey
}

// etag values arrive quoted on the wire
func cleanETag(etag *string) string {
	if etag == nil {
		return ""
	}
	return strings.Trim(*etag, "\"")
}

// Get downloads the object whole; the returned token is its ETag.
func (a *AWSS3) Get(ctx context.Context, pathKey string) ([]byte, string, error) {
	out, err := a.Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(a.Config.BucketName),
		Key:    aws.String(a.objectKey(pathKey)),
	})
	if err != nil {
		var noKey *types.NoSuchKey
		if errors.As(err, &noKey) {
			return nil, "", code.ErrorBlobNotFound
		}
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) && apiErr.ErrorCode() == "NoSuchKey" {
			return nil, "", code.ErrorBlobNotFound
		}
		return nil, "", errors.Wrap(err, "aws_s3")
	}
	defer out.Body.Close()

	content, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, "", errors.Wrap(err, "aws_s3")
	}
	return content, cleanETag(out.ETag), nil
}

// Put uploads the object with a server side precondition: If-Match on the
// expected ETag, or If-None-Match:* when creating. A stale token surfaces
// as code.ErrorSnapshotConflict.
func (a *AWSS3) Put(ctx context.Context, pathKey string, content []byte, expectedToken string) (string, error) {
	input := &s3.PutObjectInput{
		Bucket: aws.String(a.Config.BucketName),
		Key:    aws.String(a.objectKey(pathKey)),
		Body:   bytes.NewReader(content),
	}
	if expectedToken == "" {
		input.IfNoneMatch = aws.String("*")
	} else {
		input.IfMatch = aws.String("\"" + expectedToken + "\"")
	}

	out, err := a.Client.PutObject(ctx, input)
	if err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) {
			switch apiErr.ErrorCode() {
			case "PreconditionFailed", "ConditionalRequestConflict":
				return "", code.ErrorSnapshotConflict
			}
		}
		return "", errors.Wrap(err, "aws_s3")
	}
	return cleanETag(out.ETag), nil
}
