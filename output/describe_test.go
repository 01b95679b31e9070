package output_test

import (
	"strings"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/todoapp/network-go/output"
	"github.com/todoapp/network-go/request"
)

var _ = Describe("Describe", func() {
	build := func(spec request.Spec) *request.Descriptor {
		d, err := request.Build(spec)
		Expect(err).NotTo(HaveOccurred())
		return d
	}

	Context("without a descriptor", func() {
		It("reports the missing request", func() {
			Expect(output.Describe(nil)).To(Equal("Invalid urlRequest: urlRequest is nil."))
		})
	})

	Context("with a POST request", func() {
		var description string

		BeforeEach(func() {
			description = output.Describe(build(request.Spec{
				BaseURL: "https://api.example.com",
				Path:    "/todos",
				Method:  request.MethodPost,
				Header:  map[string]string{"Content-Type": "application/json"},
				Body:    []byte(`{"title":"x"}`),
			}))
		})

		It("renders the full block", func() {
			Expect(description).To(Equal(strings.Join([]string{
				"",
				"",
				"================ REQUEST INFO START ================",
				"METHOD:\t\tPOST",
				"URL:\t\thttps://api.example.com/todos",
				"HEADERS:\t[",
				"\tContent-Type: application/json",
				"]",
				`BODY:	{"title":"x"}`,
				"================= REQUEST INFO END =================",
				"",
			}, "\n")))
		})

		It("contains every part of the request", func() {
			Expect(description).To(ContainSubstring("METHOD:\t\tPOST"))
			Expect(description).To(ContainSubstring("URL:\t\thttps://api.example.com/todos\n"))
			Expect(description).To(ContainSubstring("Content-Type: application/json"))
			Expect(description).To(ContainSubstring(`{"title":"x"}`))
		})
	})

	Context("with several headers", func() {
		It("lists them sorted by name and separated by commas", func() {
			description := output.Describe(build(request.Spec{
				BaseURL: "https://api.example.com",
				Path:    "/todos",
				Method:  request.MethodGet,
				Header: map[string]string{
					"X-Trace": "abc",
					"Accept":  "application/json",
				},
			}))
			Expect(description).To(ContainSubstring("HEADERS:\t[\n\tAccept: application/json,\n\tX-Trace: abc\n]\n"))
		})
	})

	Context("without headers", func() {
		It("renders an empty bracket pair", func() {
			description := output.Describe(build(request.Spec{
				BaseURL: "https://api.example.com",
				Path:    "/todos",
				Method:  request.MethodGet,
			}))
			Expect(description).To(ContainSubstring("HEADERS:\t[\n\n]\n"))
		})
	})

	Context("with an unusual body", func() {
		It("marks a missing body as empty", func() {
			description := output.Describe(build(request.Spec{
				BaseURL: "https://api.example.com",
				Path:    "/todos",
				Method:  request.MethodGet,
			}))
			Expect(description).To(ContainSubstring("BODY:\t--> EMPTY BODY)\n"))
		})

		It("shows a present empty body as empty text", func() {
			description := output.Describe(build(request.Spec{
				BaseURL: "https://api.example.com",
				Path:    "/todos/1",
				Method:  request.MethodPut,
				Body:    []byte{},
			}))
			Expect(description).To(ContainSubstring("BODY:\t\n"))
			Expect(description).NotTo(ContainSubstring("EMPTY BODY"))
		})

		It("marks a body that is not UTF-8 as invalid", func() {
			description := output.Describe(build(request.Spec{
				BaseURL: "https://api.example.com",
				Path:    "/upload",
				Method:  request.MethodPut,
				Body:    []byte{0xff, 0xfe, 0xfd},
			}))
			Expect(description).To(ContainSubstring("BODY:\t--> INVALID BODY\n"))
		})
	})

	Context("with a descriptor that was never built", func() {
		It("falls back to placeholders", func() {
			description := output.Describe(&request.Descriptor{})
			Expect(description).To(ContainSubstring("METHOD:\t\t--> Invalid method\n"))
			Expect(description).To(ContainSubstring("URL:\t\t--> Invalid URL\n"))
			Expect(description).To(ContainSubstring("BODY:\t--> EMPTY BODY)\n"))
		})
	})
})
