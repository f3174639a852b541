package statsapi

import (
	"bytes"
	"io"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/klauspost/compress/zstd"
	"github.com/rs/zerolog/log"
)

// ZstdMiddleware returns a Fiber middleware that decompresses incoming request
// bodies with Content-Encoding: zstd and, when the client accepts zstd,
// compresses the outgoing response with zstd.
func ZstdMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if strings.Contains(strings.ToLower(c.Get(fiber.HeaderContentEncoding)), "zstd") {
			r, err := zstd.NewReader(bytes.NewReader(c.Body()))
			if err != nil {
				log.Error().Err(err).Msg("zstd: failed to create reader for request body")
				return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid zstd request body"})
			}
			defer r.Close()

			out, err := io.ReadAll(r)
			if err != nil {
				log.Error().Err(err).Msg("zstd: failed to decompress request body")
				return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid zstd request body"})
			}

			c.Request().SetBody(out)
			c.Request().Header.Set(fiber.HeaderContentLength, strconv.Itoa(len(out)))
			c.Request().Header.Del(fiber.HeaderContentEncoding)
		}

		if err := c.Next(); err != nil {
			return err
		}

		if strings.Contains(strings.ToLower(c.Get(fiber.HeaderAcceptEncoding)), "zstd") {
			respBody := c.Response().Body()
			var buf bytes.Buffer
			w, err := zstd.NewWriter(&buf)
			if err != nil {
				log.Error().Err(err).Msg("zstd: failed to create writer for response body")
				return nil
			}
			if _, err := w.Write(respBody); err != nil {
				_ = w.Close()
				log.Error().Err(err).Msg("zstd: failed to compress response body")
				return nil
			}
			_ = w.Close()

			comp := buf.Bytes()
			c.Response().SetBody(comp)
			c.Set(fiber.HeaderContentEncoding, "zstd")
			c.Set(fiber.HeaderVary, fiber.HeaderAcceptEncoding)
			c.Set(fiber.HeaderContentLength, strconv.Itoa(len(comp)))
		}

		return nil
	}
}
