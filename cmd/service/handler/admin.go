package handler

import (
	"github.com/gin-gonic/gin"

	v1 "github.com/campus-sathi/campus-sathi/app/logic/v1"
	"github.com/campus-sathi/campus-sathi/app/response"
	"github.com/campus-sathi/campus-sathi/pkg/utils"
)

type CreateFAQRequest struct {
	FAQID    string `json:"faq_id" form:"faq_id"`
	Question string `json:"question" form:"question" binding:"required"`
	Answer   string `json:"answer" form:"answer" binding:"required"`
	Category string `json:"category" form:"category"`
}

func (s *HttpSrv) CreateFAQ(c *gin.Context) {
	var req CreateFAQRequest
	if err := utils.BindArgsWithGin(c, &req); err != nil {
		s.fail(c, "faq_create", err)
		return
	}

	if err := v1.NewKnowledgeLogic(c, s.Core).AddFAQ(req.FAQID, req.Question, req.Answer, req.Category); err != nil {
		s.fail(c, "faq_create", err)
		return
	}

	response.APISuccess(c, response.EmptyStruct{})
}

type RemovedResponse struct {
	Removed int64 `json:"removed"`
}

func (s *HttpSrv) DeleteFAQ(c *gin.Context) {
	faqID, _ := c.Params.Get("id")

	removed, err := v1.NewKnowledgeLogic(c, s.Core).RemoveFAQ(faqID)
	if err != nil {
		s.fail(c, "faq_delete", err)
		return
	}

	response.APISuccess(c, RemovedResponse{Removed: removed})
}

type CreateDocumentRequest struct {
	DocumentID string   `json:"document_id" form:"document_id"`
	Source     string   `json:"source" form:"source" binding:"required"`
	Category   string   `json:"category" form:"category"`
	Chunks     []string `json:"chunks" form:"chunks" binding:"required"`
}

func (s *HttpSrv) CreateDocument(c *gin.Context) {
	var req CreateDocumentRequest
	if err := utils.BindArgsWithGin(c, &req); err != nil {
		s.fail(c, "document_create", err)
		return
	}

	if err := v1.NewKnowledgeLogic(c, s.Core).AddDocumentChunks(req.DocumentID, req.Source, req.Category, req.Chunks); err != nil {
		s.fail(c, "document_create", err)
		return
	}

	response.APISuccess(c, response.EmptyStruct{})
}

func (s *HttpSrv) DeleteDocument(c *gin.Context) {
	documentID, _ := c.Params.Get("id")

	removed, err := v1.NewKnowledgeLogic(c, s.Core).RemoveDocument(documentID)
	if err != nil {
		s.fail(c, "document_delete", err)
		return
	}

	response.APISuccess(c, RemovedResponse{Removed: removed})
}

func (s *HttpSrv) DeleteSource(c *gin.Context) {
	source, _ := c.Params.Get("source")

	removed, err := v1.NewKnowledgeLogic(c, s.Core).RemoveSource(source)
	if err != nil {
		s.fail(c, "source_delete", err)
		return
	}

	response.APISuccess(c, RemovedResponse{Removed: removed})
}

type StatsResponse struct {
	Fragments      int64  `json:"fragments"`
	Index          string `json:"index"`
	ActiveSessions int64  `json:"active_sessions"`
}

func (s *HttpSrv) Stats(c *gin.Context) {
	stats := v1.NewKnowledgeLogic(c, s.Core).Stats()

	active, err := v1.NewSessionLogic(c, s.Core).CountActive()
	if err != nil {
		s.fail(c, "stats", err)
		return
	}

	response.APISuccess(c, StatsResponse{
		Fragments:      stats.Fragments,
		Index:          stats.Index,
		ActiveSessions: active,
	})
}

type SweepResponse struct {
	Swept int64 `json:"swept"`
}

func (s *HttpSrv) SweepSessions(c *gin.Context) {
	swept, err := v1.NewSessionLogic(c, s.Core).SweepExpired()
	if err != nil {
		s.fail(c, "session_sweep", err)
		return
	}

	response.APISuccess(c, SweepResponse{Swept: swept})
}
