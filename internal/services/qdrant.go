package services

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/qdrant/go-client/qdrant"
	"go.uber.org/zap"
)

// indexTextCap bounds the resume excerpt stored in the point payload.
const indexTextCap = 2000

// CandidateIndex keeps an embedding per screened resume so previously seen
// candidates can be searched by semantic similarity. The index is advisory:
// scoring never reads from it, and writes are best effort.
type CandidateIndex interface {
	InitCollection() error
	UpsertCandidate(ctx context.Context, evalID uint, fileName string, score float64, verdict string, resumeText string, embedding []float32) error
	SearchSimilar(ctx context.Context, queryEmbedding []float32, limit int) ([]CandidateMatch, error)
}

type CandidateMatch struct {
	EvaluationID uint
	FileName     string
	Score        float64
	Verdict      string
	Similarity   float32
}

type candidateIndex struct {
	client         *qdrant.Client
	collectionName string
	vectorSize     uint64
	logger         *zap.Logger
}

func NewCandidateIndex(urlStr, apiKey, collectionName string, logger *zap.Logger) (CandidateIndex, error) {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid Qdrant URL: %w", err)
	}

	host := parsed.Hostname()
	useTLS := parsed.Scheme == "https"

	// gRPC port, not the REST one.
	port := 6334
	if p := parsed.Port(); p != "" {
		if v, err := strconv.Atoi(p); err == nil {
			port = v
		}
	}

	client, err := qdrant.NewClient(&qdrant.Config{
		Host:   host,
		Port:   port,
		APIKey: apiKey,
		UseTLS: useTLS,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create qdrant client: %w", err)
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	return &candidateIndex{
		client:         client,
		collectionName: collectionName,
		vectorSize:     768, // text-embedding-004 dimension
		logger:         logger,
	}, nil
}

// InitCollection implements CandidateIndex.
func (q *candidateIndex) InitCollection() error {
	ctx := context.Background()

	exists, err := q.client.CollectionExists(ctx, q.collectionName)
	if err != nil {
		return fmt.Errorf("failed to check collection: %w", err)
	}

	if exists {
		return nil
	}

	err = q.client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: q.collectionName,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     q.vectorSize,
			Distance: qdrant.Distance_Cosine,
		}),
	})
	if err != nil {
		return fmt.Errorf("failed to create collection: %w", err)
	}

	q.logger.Info("qdrant collection created", zap.String("collection", q.collectionName))
	return nil
}

// UpsertCandidate implements CandidateIndex.
func (q *candidateIndex) UpsertCandidate(ctx context.Context, evalID uint, fileName string, score float64, verdict string, resumeText string, embedding []float32) error {
	if len(resumeText) > indexTextCap {
		resumeText = resumeText[:indexTextCap]
	}

	point := &qdrant.PointStruct{
		Id:      qdrant.NewIDNum(uint64(evalID)),
		Vectors: qdrant.NewVectors(embedding...),
		Payload: qdrant.NewValueMap(map[string]interface{}{
			"evaluation_id": int64(evalID),
			"file_name":     fileName,
			"score":         score,
			"verdict":       verdict,
			"text":          resumeText,
		}),
	}

	_, err := q.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: q.collectionName,
		Points:         []*qdrant.PointStruct{point},
	})
	if err != nil {
		return fmt.Errorf("failed to upsert candidate: %w", err)
	}

	return nil
}

// SearchSimilar implements CandidateIndex.
func (q *candidateIndex) SearchSimilar(ctx context.Context, queryEmbedding []float32, limit int) ([]CandidateMatch, error) {
	searchResult, err := q.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: q.collectionName,
		Query:          qdrant.NewQuery(queryEmbedding...),
		Limit:          qdrant.PtrOf(uint64(limit)),
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search candidates: %w", err)
	}

	var matches []CandidateMatch
	for _, point := range searchResult {
		payload := point.Payload

		match := CandidateMatch{
			Similarity: point.Score,
		}

		if v, ok := payload["evaluation_id"]; ok {
			if val, ok := v.GetKind().(*qdrant.Value_IntegerValue); ok {
				match.EvaluationID = uint(val.IntegerValue)
			}
		}

		if v, ok := payload["file_name"]; ok {
			if val, ok := v.GetKind().(*qdrant.Value_StringValue); ok {
				match.FileName = val.StringValue
			}
		}

		if v, ok := payload["score"]; ok {
			if val, ok := v.GetKind().(*qdrant.Value_DoubleValue); ok {
				match.Score = val.DoubleValue
			}
		}

		if v, ok := payload["verdict"]; ok {
			if val, ok := v.GetKind().(*qdrant.Value_StringValue); ok {
				match.Verdict = val.StringValue
			}
		}

		matches = append(matches, match)
	}

	return matches, nil
}
